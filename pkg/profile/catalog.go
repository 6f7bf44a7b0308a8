package profile

// The built-in catalog. These numbers are configuration data, not
// logic: downstream checks are exactly as strict as the thresholds
// recorded here.

func builtinProfiles() []Profile {
	return []Profile{
		// ============= BOARD TECH PROFILES =============
		{
			ID:              "2l_cheap_proto",
			Name:            "2-Layer Cheap Prototype",
			Description:     "Standard 2-layer board for cheap Chinese fabs (JLC, PCBWay, AllPCB)",
			Type:            TypeBoardTech,
			MinTraceWidth:   MM(0.15), // 6mil
			MinTraceSpacing: MM(0.15),
			MinViaDiameter:  MM(0.45),
			MinViaDrill:     MM(0.3),
			MinAnnularRing:  MM(0.075), // 3mil
			MaxAspectRatio:  10.0,
			MinHoleDiameter: MM(0.2),
			MinHoleSpacing:  MM(0.3),
			Clearance: map[string]Value{
				TierLV: MM(0.2),
				TierMV: MM(1.5),
				TierHV: MM(2.5),
			},
			Creepage: map[string]Value{
				TierLV: MM(0.3),
				TierMV: MM(2.0),
				TierHV: MM(3.0),
			},
			MinMaskSliver:       MM(0.1),
			MaskExpansion:       MM(0.05),
			MinComponentSpacing: MM(0.5),
			MinEdgeClearance:    MM(0.5),
			MaxLayers:           2,
			MinLayers:           2,
			StandardThickness:   []float64{1.6},
			CostLevel:           "low",
			Tags:                []string{"prototype", "cheap", "2layer", "jlc", "pcbway"},
		},
		{
			ID:              "4l_iot",
			Name:            "4-Layer IoT/Consumer",
			Description:     "Standard 4-layer for IoT, consumer electronics, moderate complexity",
			Type:            TypeBoardTech,
			MinTraceWidth:   MM(0.127), // 5mil
			MinTraceSpacing: MM(0.127),
			MinViaDiameter:  MM(0.4),
			MinViaDrill:     MM(0.25),
			MinAnnularRing:  MM(0.075),
			MaxAspectRatio:  12.0,
			MinHoleDiameter: MM(0.2),
			MinHoleSpacing:  MM(0.3),
			Clearance: map[string]Value{
				TierLV: MM(0.15),
				TierMV: MM(1.5),
				TierHV: MM(2.5),
			},
			Creepage: map[string]Value{
				TierLV: MM(0.25),
				TierMV: MM(2.0),
				TierHV: MM(3.0),
			},
			MinMaskSliver:       MM(0.1),
			MaskExpansion:       MM(0.05),
			MinComponentSpacing: MM(0.5),
			MinEdgeClearance:    MM(0.5),
			MaxLayers:           4,
			MinLayers:           4,
			StandardThickness:   []float64{1.6},
			CostLevel:           "medium",
			Tags:                []string{"4layer", "iot", "consumer", "moderate"},
		},
		{
			ID:              "6l_hdi",
			Name:            "6-Layer HDI",
			Description:     "High-density 6-layer for complex designs, BGA, high-speed",
			Type:            TypeBoardTech,
			MinTraceWidth:   MM(0.1), // 4mil
			MinTraceSpacing: MM(0.1),
			MinViaDiameter:  MM(0.3),
			MinViaDrill:     MM(0.15),
			MinAnnularRing:  MM(0.075),
			MaxAspectRatio:  15.0,
			MinHoleDiameter: MM(0.2),
			MinHoleSpacing:  MM(0.3),
			Clearance: map[string]Value{
				TierLV: MM(0.1),
				TierMV: MM(1.5),
				TierHV: MM(2.5),
			},
			Creepage: map[string]Value{
				TierLV: MM(0.2),
				TierMV: MM(2.0),
				TierHV: MM(3.0),
			},
			MinMaskSliver:       MM(0.1),
			MaskExpansion:       MM(0.05),
			MinComponentSpacing: MM(0.5),
			MinEdgeClearance:    MM(0.5),
			MaxLayers:           6,
			MinLayers:           6,
			StandardThickness:   []float64{1.6},
			CostLevel:           "high",
			Tags:                []string{"6layer", "hdi", "bga", "high_speed", "complex"},
		},
		{
			ID:              "hv_power",
			Name:            "High-Voltage Power Board",
			Description:     "AC mains / high-voltage power supply board (up to 300VAC)",
			Type:            TypeBoardTech,
			MinTraceWidth:   MM(0.2),
			MinTraceSpacing: MM(0.2),
			MinViaDiameter:  MM(0.5),
			MinViaDrill:     MM(0.3),
			MinAnnularRing:  MM(0.1),
			MinHoleDiameter: MM(0.2),
			MinHoleSpacing:  MM(0.3),
			Clearance: map[string]Value{
				TierLV: MM(0.3),
				TierMV: MM(2.5), // 48-300V
				TierHV: MM(4.0), // >300V
			},
			Creepage: map[string]Value{
				TierLV: MM(0.5),
				TierMV: MM(3.0), // IPC-2221 for 230VAC
				TierHV: MM(5.0),
			},
			MinMaskSliver:       MM(0.1),
			MaskExpansion:       MM(0.05),
			MinComponentSpacing: MM(0.5),
			MinEdgeClearance:    MM(3.0), // keep HV away from the edge
			StandardThickness:   []float64{1.6},
			CostLevel:           "medium",
			Tags:                []string{"power", "high_voltage", "mains", "ac", "230v"},
		},

		// ============= STANDARD / COMPLIANCE PROFILES =============
		{
			ID:              "ipc2221_generic",
			Name:            "IPC-2221 Generic",
			Description:     "IPC-2221 generic standard with conservative clearances",
			Type:            TypeStandard,
			MinTraceWidth:   MM(0.13), // Table 6-1
			MinTraceSpacing: MM(0.13),
			MinViaDiameter:  MM(0.4),
			MinViaDrill:     MM(0.25),
			MinAnnularRing:  MM(0.05),
			MinHoleDiameter: MM(0.2),
			MinHoleSpacing:  MM(0.3),
			Clearance: map[string]Value{
				TierLV: MM(0.13), // <50V
				TierMV: MM(1.5),  // 50-300V
				TierHV: MM(2.5),  // >300V
			},
			Creepage: map[string]Value{
				TierLV: MM(0.25),
				TierMV: MM(2.5), // IPC-2221 Table 6-2
				TierHV: MM(4.0),
			},
			MinMaskSliver:       MM(0.1),
			MaskExpansion:       MM(0.05),
			MinComponentSpacing: MM(0.5),
			MinEdgeClearance:    MM(0.5),
			StandardThickness:   []float64{1.6},
			CostLevel:           "medium",
			Tags:                []string{"ipc", "standard", "generic", "conservative"},
		},
		{
			ID:              "medical_conservative",
			Name:            "Medical Conservative",
			Description:     "Conservative rules for medical devices (not certified, for reference)",
			Type:            TypeStandard,
			MinTraceWidth:   MM(0.15),
			MinTraceSpacing: MM(0.15),
			MinViaDiameter:  MM(0.45),
			MinViaDrill:     MM(0.3),
			MinAnnularRing:  MM(0.1),
			MinHoleDiameter: MM(0.2),
			MinHoleSpacing:  MM(0.3),
			Clearance: map[string]Value{
				TierLV: MM(0.25),
				TierMV: MM(2.0),
				TierHV: MM(3.0),
			},
			Creepage: map[string]Value{
				TierLV: MM(0.4),
				TierMV: MM(3.0),
				TierHV: MM(5.0),
			},
			MinMaskSliver:       MM(0.1),
			MaskExpansion:       MM(0.05),
			MinComponentSpacing: MM(1.0),
			MinEdgeClearance:    MM(0.5),
			StandardThickness:   []float64{1.6},
			CostLevel:           "high",
			Tags:                []string{"medical", "conservative", "safety"},
		},

		// ============= MANUFACTURER PROFILES =============
		{
			ID:              "jlc_standard",
			Name:            "JLCPCB Standard",
			Description:     "JLCPCB standard capabilities (most common)",
			Type:            TypeManufacturer,
			MinTraceWidth:   MM(0.127), // 5mil
			MinTraceSpacing: MM(0.127),
			MinViaDiameter:  MM(0.45),
			MinViaDrill:     MM(0.3),
			MinAnnularRing:  MM(0.075),
			MinHoleDiameter: MM(0.2),
			MinHoleSpacing:  MM(0.3),
			Clearance: map[string]Value{
				TierLV: MM(0.15),
				TierMV: MM(1.5),
				TierHV: MM(2.5),
			},
			Creepage: map[string]Value{
				TierLV: MM(0.3),
				TierMV: MM(2.0),
				TierHV: MM(3.0),
			},
			MinMaskSliver:       MM(0.1),
			MaskExpansion:       MM(0.05),
			MinComponentSpacing: MM(0.5),
			MinEdgeClearance:    MM(0.5),
			StandardThickness:   []float64{0.8, 1.0, 1.2, 1.6, 2.0},
			CostLevel:           "low",
			Tags:                []string{"jlcpcb", "manufacturer", "cheap", "china"},
		},
		{
			ID:              "pcbway_standard",
			Name:            "PCBWay Standard",
			Description:     "PCBWay standard capabilities",
			Type:            TypeManufacturer,
			MinTraceWidth:   MM(0.127),
			MinTraceSpacing: MM(0.127),
			MinViaDiameter:  MM(0.45),
			MinViaDrill:     MM(0.3),
			MinAnnularRing:  MM(0.075),
			MinHoleDiameter: MM(0.2),
			MinHoleSpacing:  MM(0.3),
			Clearance: map[string]Value{
				TierLV: MM(0.15),
				TierMV: MM(1.5),
				TierHV: MM(2.5),
			},
			Creepage: map[string]Value{
				TierLV: MM(0.3),
				TierMV: MM(2.0),
				TierHV: MM(3.0),
			},
			MinMaskSliver:       MM(0.1),
			MaskExpansion:       MM(0.05),
			MinComponentSpacing: MM(0.5),
			MinEdgeClearance:    MM(0.5),
			StandardThickness:   []float64{1.6},
			CostLevel:           "low",
			Tags:                []string{"pcbway", "manufacturer", "china"},
		},
	}
}
