package server

// PortalStat is a headline number on the portal dashboard.
type PortalStat struct {
	Label  string
	Value  string
	Change string
}

// PortalProject is a row in the recent projects list.
type PortalProject struct {
	Name     string
	Status   string
	Progress int
}

// PortalResource is a downloadable asset surfaced on the dashboard.
type PortalResource struct {
	Title string
	Kind  string
}

var portalStats = []PortalStat{
	{Label: "Active Projects", Value: "3", Change: "+1"},
	{Label: "Revenue", Value: "$12,450", Change: "+18%"},
	{Label: "Network", Value: "45", Change: "+8"},
	{Label: "Resources", Value: "28", Change: "+5"},
}

var portalProjects = []PortalProject{
	{Name: "Brand Identity Refresh", Status: "In Progress", Progress: 65},
	{Name: "Social Media Campaign", Status: "In Review", Progress: 90},
	{Name: "Website Redesign", Status: "Planning", Progress: 20},
}

var portalResources = []PortalResource{
	{Title: "Brand Guidelines Template", Kind: "PDF"},
	{Title: "Content Calendar", Kind: "Spreadsheet"},
	{Title: "Pitch Deck Framework", Kind: "Slides"},
	{Title: "Pricing Worksheet", Kind: "Spreadsheet"},
	{Title: "Contract Starter Pack", Kind: "PDF"},
	{Title: "Social Media Toolkit", Kind: "ZIP"},
}
