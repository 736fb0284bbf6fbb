package report

// Architecture returns the full VibeLux system architecture report.
func Architecture() *Document {
	doc := NewDocument(
		"VibeLux System Architecture",
		"Platform Overview, Business Model, and Technical Implementation",
	)

	doc.Sections = []Section{
		executiveSummary(),
		systemOverview(),
		businessModel(),
		userWorkflows(),
		technicalImplementation(),
		integrationEcosystem(),
		performanceAnalytics(),
		futureRoadmap(),
	}
	return doc
}

func executiveSummary() Section {
	return Section{
		Title: "Executive Summary",
		Blocks: []Block{
			paragraph("VibeLux is a comprehensive controlled environment agriculture (CEA) platform " +
				"combining cultivation management, energy optimization, equipment financing, and " +
				"marketplace services. The platform removes the capital barrier to modern growing " +
				"equipment: installations are funded by investors and repaid from verified energy " +
				"savings on an 80/20 grower/platform split."),
			stats(
				Stat{Value: "500+", Label: "Platform features"},
				Stat{Value: "30-50%", Label: "Energy cost reduction"},
				Stat{Value: "$0", Label: "Upfront equipment cost"},
				Stat{Value: "80/20", Label: "Savings split"},
			),
			table(
				[]string{"Metric", "Value"},
				[]string{"Application routes", "847"},
				[]string{"API endpoints", "312"},
				[]string{"Database models", "178"},
				[]string{"ML models in production", "9"},
				[]string{"Supported IoT protocols", "6"},
				[]string{"External integrations", "24"},
			),
		},
	}
}

func systemOverview() Section {
	return Section{
		Title: "System Overview",
		Blocks: []Block{
			paragraph("The platform is organized in five layers. Each layer exposes typed service " +
				"interfaces to the layer above and publishes telemetry downward into the data plane."),
			table(
				[]string{"Layer", "Responsibility", "Key Components"},
				[]string{"Presentation", "Web app, mobile, reporting", "Next.js app, dashboards, PDF exports"},
				[]string{"Application", "Business workflows", "Cultivation, energy, marketplace, investment"},
				[]string{"Intelligence", "Optimization & prediction", "ML models, rules engine, CFD solver"},
				[]string{"Integration", "External connectivity", "IoT gateways, utility APIs, payments"},
				[]string{"Data", "Storage & telemetry", "PostgreSQL, InfluxDB, Redis, object store"},
			),
			heading("Frontend Stack"),
			table(
				[]string{"Technology", "Role"},
				[]string{"Next.js 14 / React 18", "Application framework"},
				[]string{"TypeScript", "Type-safe application code"},
				[]string{"Tailwind CSS", "Design system"},
				[]string{"Three.js", "3D room designer"},
				[]string{"WebGL compute", "Client-side CFD preview"},
			),
			heading("Backend Stack"),
			table(
				[]string{"Technology", "Role"},
				[]string{"Node.js services", "API and workflow orchestration"},
				[]string{"Prisma ORM", "Relational data access"},
				[]string{"Python workers", "ML inference and CFD batch jobs"},
				[]string{"WebSocket fabric", "Live sensor streaming"},
			),
		},
	}
}

func businessModel() Section {
	return Section{
		Title: "Business Model & Revenue Flows",
		Blocks: []Block{
			paragraph("Revenue sharing is the core commercial mechanism: equipment is installed at no " +
				"cost to the grower, savings are measured against a utility-data baseline, and the " +
				"verified difference is split 80/20 between grower and platform each month."),
			table(
				[]string{"Revenue Stream", "Mechanism", "Share"},
				[]string{"Energy savings share", "20% of verified monthly savings", "Core"},
				[]string{"Equipment marketplace", "Transaction fee on listings", "6-8%"},
				[]string{"Produce marketplace", "Transaction fee on produce sales", "3-5%"},
				[]string{"Service marketplace", "Booking fee on service providers", "10%"},
				[]string{"Premium analytics", "Subscription tiers", "SaaS"},
				[]string{"Research licensing", "Anonymized dataset access", "Per-seat"},
			),
			heading("Equipment Investment Flow"),
			table(
				[]string{"Step", "Actor", "Action"},
				[]string{"1", "Grower", "Requests equipment through the platform"},
				[]string{"2", "Platform", "Runs facility audit and savings projection"},
				[]string{"3", "Investor", "Funds the installation against projected returns"},
				[]string{"4", "Supplier", "Ships and installs the equipment"},
				[]string{"5", "Platform", "Optimizes operation and meters the baseline delta"},
				[]string{"6", "Platform", "Verifies savings against utility billing data"},
				[]string{"7", "All", "Monthly distribution: 80% grower, 20% split platform/investor"},
			),
			paragraph("Worked example: a facility saving $15,000 per month keeps $12,000; the remaining " +
				"$3,000 services the equipment investment and platform fee."),
		},
	}
}

func userWorkflows() Section {
	return Section{
		Title: "User Workflows",
		Blocks: []Block{
			heading("Grower Onboarding"),
			table(
				[]string{"Phase", "Duration", "Outcome"},
				[]string{"Account & facility profile", "Day 1", "Rooms, zones, and canopy mapped"},
				[]string{"Utility data connection", "Week 1", "12-month consumption baseline"},
				[]string{"Energy audit", "Weeks 2-3", "Savings headroom quantified"},
				[]string{"Equipment install", "Weeks 4-8", "Fixtures and controls commissioned"},
				[]string{"Optimization live", "Week 9", "AI control enabled, savings metered"},
			),
			heading("Investor Flow"),
			table(
				[]string{"Stage", "Detail"},
				[]string{"Browse opportunities", "Vetted facilities with projected returns"},
				[]string{"Commit capital", "Escrowed until installation completes"},
				[]string{"Track performance", "Live dashboard of metered savings"},
				[]string{"Receive distributions", "Monthly share of the 20% platform split"},
			),
			heading("Supplier Benefits"),
			table(
				[]string{"Benefit", "Detail"},
				[]string{"Qualified demand", "Pre-audited facilities ready to buy"},
				[]string{"Financed orders", "Investor capital removes payment risk"},
				[]string{"Performance data", "Field telemetry on installed equipment"},
			),
		},
	}
}

func technicalImplementation() Section {
	return Section{
		Title: "Technical Implementation",
		Blocks: []Block{
			heading("Data Stores"),
			table(
				[]string{"Store", "Workload"},
				[]string{"PostgreSQL", "Transactional core: users, facilities, orders"},
				[]string{"InfluxDB", "Sensor time series at 1-minute resolution"},
				[]string{"Redis", "Session cache and rate-limit counters"},
				[]string{"S3-compatible object store", "IES files, room models, report artifacts"},
			),
			heading("IoT Protocols"),
			table(
				[]string{"Protocol", "Equipment Class"},
				[]string{"Modbus TCP/RTU", "Power meters, VFDs"},
				[]string{"BACnet/IP", "HVAC and building automation"},
				[]string{"MQTT", "Wireless sensor networks"},
				[]string{"0-10V / PWM bridges", "Legacy fixture dimming"},
				[]string{"REST connectors", "Climate computers (Priva, Argus, TrolMaster)"},
				[]string{"LoRaWAN", "Long-range outdoor sensors"},
			),
			heading("ML Models"),
			table(
				[]string{"Model", "Purpose", "Accuracy"},
				[]string{"Yield predictor", "Harvest weight from environment history", "91%"},
				[]string{"Energy forecaster", "Next-day consumption by zone", "94%"},
				[]string{"Pest & disease detector", "Image classification on scout photos", "88%"},
				[]string{"Spectrum optimizer", "Fixture mix for target morphology", "-"},
				[]string{"Anomaly detector", "Sensor drift and equipment failure", "96%"},
			),
			heading("Sensor Categories"),
			table(
				[]string{"Category", "Examples"},
				[]string{"Climate", "Temperature, RH, VPD, CO2"},
				[]string{"Lighting", "PPFD, spectrum, photoperiod"},
				[]string{"Irrigation", "EC, pH, substrate moisture"},
				[]string{"Power", "Per-circuit consumption, demand"},
			),
		},
	}
}

func integrationEcosystem() Section {
	return Section{
		Title: "Integration Ecosystem",
		Blocks: []Block{
			table(
				[]string{"Integration", "Category", "Purpose"},
				[]string{"Utility rate APIs", "Energy", "Real-time and day-ahead pricing"},
				[]string{"Demand response programs", "Energy", "Grid event participation revenue"},
				[]string{"Weather services", "Energy", "Forecast-driven load planning"},
				[]string{"Payment & escrow", "Commerce", "Marketplace settlement"},
				[]string{"Accounting exports", "Commerce", "QuickBooks/Xero journals"},
				[]string{"Compliance tracking", "Regulatory", "Seed-to-sale reporting"},
			),
			heading("Service Provider Network"),
			table(
				[]string{"Provider Type", "Marketplace Role"},
				[]string{"Electricians", "Install and commission fixtures"},
				[]string{"HVAC technicians", "Climate system maintenance"},
				[]string{"IPM specialists", "Scouting and treatment programs"},
				[]string{"Consultants", "Cultivation and compliance advisory"},
			),
		},
	}
}

func performanceAnalytics() Section {
	return Section{
		Title: "Performance & Analytics",
		Blocks: []Block{
			heading("KPI Categories"),
			table(
				[]string{"Category", "Example Metrics"},
				[]string{"Energy", "kWh/gram, peak demand, savings vs baseline"},
				[]string{"Cultivation", "Yield/sq ft, cycle time, quality grade"},
				[]string{"Financial", "Savings distributions, marketplace GMV"},
				[]string{"Operations", "Alert response time, equipment uptime"},
			),
			heading("Optimization Algorithms"),
			table(
				[]string{"Algorithm", "Target"},
				[]string{"Peak shaving with DLI compensation", "Lighting cost"},
				[]string{"Thermal load shifting", "HVAC cost"},
				[]string{"Battery dispatch", "Demand charges"},
				[]string{"Demand response bidding", "Grid revenue"},
			),
			heading("Report Types"),
			table(
				[]string{"Report", "Cadence"},
				[]string{"Savings verification", "Monthly"},
				[]string{"Cultivation cycle summary", "Per harvest"},
				[]string{"Investor performance", "Monthly"},
				[]string{"Compliance export", "On demand"},
			),
		},
	}
}

func futureRoadmap() Section {
	return Section{
		Title: "Future Roadmap",
		Blocks: []Block{
			table(
				[]string{"Timeline", "Milestone"},
				[]string{"Q3 2025", "Autonomous cultivation recipes (closed-loop)"},
				[]string{"Q4 2025", "Produce marketplace national rollout"},
				[]string{"Q1 2026", "Vertical farming module (stacked rack CFD)"},
				[]string{"Q2 2026", "Carbon credit verification pipeline"},
			),
			heading("Market Expansion"),
			table(
				[]string{"Market", "Entry"},
				[]string{"Leafy greens & vine crops", "Active"},
				[]string{"Mushroom cultivation", "2025"},
				[]string{"Insect protein", "2026"},
			),
			heading("Competitive Position"),
			table(
				[]string{"Advantage", "Moat"},
				[]string{"Zero-capex equipment model", "Investor network and savings verification"},
				[]string{"Verified savings data", "Utility-grade measurement history"},
				[]string{"Integrated marketplace", "Demand aggregated across the grower base"},
			),
		},
	}
}
