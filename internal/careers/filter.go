package careers

import "strings"

// FilterSet narrows an already-fetched job list for display. A field equal
// to its sentinel value, or left empty, places no constraint on that
// dimension. FilterJobs and GroupByDepartment are pure and never touch the
// network.
type FilterSet struct {
	Department     string
	Location       string
	EmploymentType string
}

// Active reports whether any dimension is constrained.
func (f FilterSet) Active() bool {
	return !isAll(f.Department, AllDepartments) ||
		!isAll(f.Location, AllLocations) ||
		!isAll(f.EmploymentType, AllTypes)
}

func isAll(value, sentinel string) bool {
	return value == "" || value == sentinel
}

// FilterJobs keeps a job iff every constrained dimension matches. Location
// is substring-based so a city-level filter matches full "City, Region"
// strings. Employment type compares the formatted label because that is
// what the filter options present.
func FilterJobs(jobs []Job, f FilterSet) []Job {
	out := make([]Job, 0, len(jobs))
	for _, job := range jobs {
		if !isAll(f.Department, AllDepartments) && job.Department != f.Department {
			continue
		}
		if !isAll(f.Location, AllLocations) && !strings.Contains(job.Location, f.Location) {
			continue
		}
		if !isAll(f.EmploymentType, AllTypes) && FormatEmploymentType(string(job.EmploymentType)) != f.EmploymentType {
			continue
		}
		out = append(out, job)
	}
	return out
}

// DepartmentGroup is one department's ordered run of jobs.
type DepartmentGroup struct {
	Name string
	Jobs []Job
}

// GroupByDepartment buckets jobs by department, preserving the order
// departments are first encountered and the relative order of jobs within
// each department. Output is deterministic for a fixed input order.
func GroupByDepartment(jobs []Job) []DepartmentGroup {
	index := make(map[string]int, len(jobs))
	groups := make([]DepartmentGroup, 0, len(jobs))

	for _, job := range jobs {
		i, ok := index[job.Department]
		if !ok {
			i = len(groups)
			index[job.Department] = i
			groups = append(groups, DepartmentGroup{Name: job.Department})
		}
		groups[i].Jobs = append(groups[i].Jobs, job)
	}
	return groups
}

// UniqueLocations lists the distinct job locations in first-seen order,
// used to build the location filter options.
func UniqueLocations(jobs []Job) []string {
	seen := make(map[string]bool, len(jobs))
	out := make([]string, 0, len(jobs))
	for _, job := range jobs {
		if job.Location == "" || seen[job.Location] {
			continue
		}
		seen[job.Location] = true
		out = append(out, job.Location)
	}
	return out
}
