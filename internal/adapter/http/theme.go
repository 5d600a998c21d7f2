package httpadapter

import "html/template"

// Theme holds the colours of one page theme. Values are trusted constants
// and typed as template.CSS so html/template emits them unchanged.
type Theme struct {
	Name            string
	Background      template.CSS
	CardBackground  template.CSS
	SidebarBg       template.CSS
	Text            template.CSS
	Subtext         template.CSS
	PrimaryGradient template.CSS
	Accent          template.CSS
	Border          template.CSS
	Shadow          template.CSS
}

var themes = []Theme{
	{
		Name:            "Modern Light",
		Background:      "#f8fafc",
		CardBackground:  "rgba(255, 255, 255, 0.9)",
		SidebarBg:       "#f1f5f9",
		Text:            "#0f172a",
		Subtext:         "#64748b",
		PrimaryGradient: "linear-gradient(135deg, #6366f1 0%, #a855f7 100%)",
		Accent:          "#6366f1",
		Border:          "rgba(0, 0, 0, 0.05)",
		Shadow:          "0 4px 20px -5px rgba(0,0,0,0.05)",
	},
	{
		Name:            "Deep Dark",
		Background:      "#020617",
		CardBackground:  "rgba(15, 23, 42, 0.8)",
		SidebarBg:       "#0f172a",
		Text:            "#f1f5f9",
		Subtext:         "#94a3b8",
		PrimaryGradient: "linear-gradient(135deg, #38bdf8 0%, #818cf8 100%)",
		Accent:          "#38bdf8",
		Border:          "rgba(255, 255, 255, 0.05)",
		Shadow:          "0 20px 40px -15px rgba(0,0,0,0.3)",
	},
	{
		Name:            "Emerald Pro",
		Background:      "#f0fdf4",
		CardBackground:  "rgba(255, 255, 255, 0.9)",
		SidebarBg:       "#dcfce7",
		Text:            "#064e3b",
		Subtext:         "#065f46",
		PrimaryGradient: "linear-gradient(135deg, #10b981 0%, #059669 100%)",
		Accent:          "#10b981",
		Border:          "rgba(0, 0, 0, 0.05)",
		Shadow:          "0 10px 30px -10px rgba(0,0,0,0.05)",
	},
	{
		Name:            "Royal Purple",
		Background:      "#faf5ff",
		CardBackground:  "rgba(255, 255, 255, 0.9)",
		SidebarBg:       "#f3e8ff",
		Text:            "#4c1d95",
		Subtext:         "#6b21a8",
		PrimaryGradient: "linear-gradient(135deg, #a855f7 0%, #7e22ce 100%)",
		Accent:          "#a855f7",
		Border:          "rgba(0, 0, 0, 0.05)",
		Shadow:          "0 10px 30px -10px rgba(0,0,0,0.05)",
	},
}

// themeByName returns the named theme, or the default for unknown names.
func themeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

func themeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
