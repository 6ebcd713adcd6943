package ui

// Status is the viewer state summarized on the HUD panel.
type Status struct {
	Seed     int64
	Dim      int
	Backend  string
	Layers   []LayerStatus
	Isolated string
	Overlay  bool
	Warnings []string
}

// LayerStatus reports one layer's visibility toggle.
type LayerStatus struct {
	Name    string
	Visible bool
}
