// Package diagram renders the VibeLux system architecture map: user types,
// the core platform, feature modules, marketplaces, analytics, and the
// integration layer, connected by revenue and data flows.
package diagram

// Group identifies a cluster of related components. Each group renders as a
// Graphviz cluster with its own accent color.
type Group struct {
	ID    string
	Label string
	Color string // hex fill for member nodes
}

// Component is a single box on the map.
type Component struct {
	ID    string
	Label string // may contain \n for multi-line labels
	Group string // Group.ID
}

// Link is a directed edge between components.
type Link struct {
	From  string
	To    string
	Label string
	// Dashed marks secondary flows (data reporting, qualification checks).
	Dashed bool
}

// Model is a complete architecture map.
type Model struct {
	Title      string
	Groups     []Group
	Components []Component
	Links      []Link
}

// Component group colors follow the original architecture artwork.
const (
	colorUsers       = "#4CAF50"
	colorCore        = "#2196F3"
	colorMarketplace = "#FF9800"
	colorRevenue     = "#9C27B0"
	colorInvestment  = "#E91E63"
	colorAnalytics   = "#00BCD4"
	colorAutomation  = "#795548"
	colorAPI         = "#607D8B"
	colorData        = "#FFC107"
)

// System returns the full VibeLux platform map.
func System() *Model {
	return &Model{
		Title: "VibeLux Platform Architecture",
		Groups: []Group{
			{ID: "users", Label: "User Types", Color: colorUsers},
			{ID: "core", Label: "Core Platform", Color: colorCore},
			{ID: "modules", Label: "Feature Modules", Color: colorRevenue},
			{ID: "marketplace", Label: "Marketplaces", Color: colorMarketplace},
			{ID: "analytics", Label: "Analytics & Data", Color: colorAnalytics},
			{ID: "integrations", Label: "Integration Layer", Color: colorAPI},
		},
		Components: []Component{
			// User types
			{ID: "growers", Label: "Growers &\nCultivators", Group: "users"},
			{ID: "investors", Label: "Equipment\nInvestors", Group: "users"},
			{ID: "suppliers", Label: "Equipment\nSuppliers", Group: "users"},
			{ID: "providers", Label: "Service\nProviders", Group: "users"},
			{ID: "researchers", Label: "Researchers &\nConsultants", Group: "users"},
			{ID: "utilities", Label: "Utility\nPartners", Group: "users"},

			// Core
			{ID: "platform", Label: "VibeLux Core Platform\nCultivation Management\n& Optimization", Group: "core"},

			// Feature modules
			{ID: "energy", Label: "Energy\nOptimization", Group: "modules"},
			{ID: "revshare", Label: "Revenue Sharing\n(80/20 Split)", Group: "modules"},
			{ID: "design", Label: "3D Design\n& CFD Analysis", Group: "modules"},

			// Marketplaces
			{ID: "equipment", Label: "Equipment\nMarketplace", Group: "marketplace"},
			{ID: "produce", Label: "Produce\nMarketplace", Group: "marketplace"},
			{ID: "services", Label: "Service\nMarketplace", Group: "marketplace"},

			// Analytics & data
			{ID: "ml", Label: "ML Models\n(Yield, Energy, Pests)", Group: "analytics"},
			{ID: "telemetry", Label: "Sensor Telemetry\n& Time Series", Group: "analytics"},

			// Integration layer
			{ID: "iot", Label: "IoT Protocols\n(Modbus, BACnet, MQTT)", Group: "integrations"},
			{ID: "utility_api", Label: "Utility Rate\nAPIs", Group: "integrations"},
			{ID: "climate", Label: "Climate Computer\nConnectors", Group: "integrations"},
			{ID: "payments", Label: "Payments &\nEscrow", Group: "integrations"},
		},
		Links: []Link{
			{From: "growers", To: "platform", Label: "cultivate"},
			{From: "investors", To: "platform", Label: "fund equipment"},
			{From: "suppliers", To: "equipment"},
			{From: "providers", To: "services"},
			{From: "researchers", To: "ml", Dashed: true},
			{From: "utilities", To: "utility_api"},

			{From: "platform", To: "energy"},
			{From: "platform", To: "revshare"},
			{From: "platform", To: "design"},
			{From: "platform", To: "equipment"},
			{From: "platform", To: "produce"},
			{From: "platform", To: "services"},

			{From: "energy", To: "revshare", Label: "verified savings"},
			{From: "revshare", To: "investors", Label: "20% share", Dashed: true},
			{From: "revshare", To: "growers", Label: "80% share", Dashed: true},

			{From: "telemetry", To: "ml"},
			{From: "ml", To: "energy", Label: "setpoints"},
			{From: "iot", To: "telemetry"},
			{From: "climate", To: "telemetry"},
			{From: "utility_api", To: "energy", Label: "rates"},
			{From: "equipment", To: "payments"},
			{From: "produce", To: "payments"},
		},
	}
}
