package wizard

// DefaultCategories returns the five fixed review categories in form order.
func DefaultCategories() []Category {
	return []Category{
		{
			ID:          "transportability",
			Title:       "Transportability & Mobility",
			Description: "Ease of deployment, movement, and setup in various operational environments",
		},
		{
			ID:          "ease_of_use",
			Title:       "Ease of Use",
			Description: "User interface intuitiveness, training requirements, and operator-friendliness",
		},
		{
			ID:          "interoperability",
			Title:       "Interoperability",
			Description: "Integration capability with existing command and control systems",
		},
		{
			ID:          "detection_effectiveness",
			Title:       "Detection & Effectiveness",
			Description: "Range, accuracy, and reliability in identifying and responding to threats",
		},
		{
			ID:          "reliability",
			Title:       "System Reliability",
			Description: "Consistency of performance and uptime in operational conditions",
		},
	}
}
