package templates

func sectionID(status string) string {
	return status + "-projects"
}

func dropURL(status string) string {
	return "/api/lists/" + status + "/drop"
}
