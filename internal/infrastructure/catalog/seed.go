package catalog

import "github.com/cochlearspare/backend/internal/domain"

// seedDevices lists the supported sound processors per manufacturer
func seedDevices() []domain.DeviceModel {
	return []domain.DeviceModel{
		// Advanced Bionics
		{ID: "harmony", Brand: domain.BrandAdvancedBionics, Name: "AB Harmony", Series: "Harmony", Image: "https://picsum.photos/seed/harmony/400/400", Description: "Proven reliability."},
		{ID: "naida_q30", Brand: domain.BrandAdvancedBionics, Name: "Naida CI Q30", Series: "Naida Q30", Image: "https://picsum.photos/seed/q30/400/400", Description: "Essential hearing."},
		{ID: "naida_q70", Brand: domain.BrandAdvancedBionics, Name: "Naida CI Q70", Series: "Naida Q70", Image: "https://picsum.photos/seed/q70/400/400", Description: "Advanced features."},
		{ID: "naida_q90", Brand: domain.BrandAdvancedBionics, Name: "Naida CI Q90", Series: "Naida Q90", Image: "https://picsum.photos/seed/q90/400/400", Description: "Industry-leading performance."},
		{ID: "marvel", Brand: domain.BrandAdvancedBionics, Name: "Marvel CI", Series: "Marvel", Image: "https://picsum.photos/seed/marvel/400/400", Description: "Universal Bluetooth connectivity."},

		// Cochlear
		{ID: "freedom", Brand: domain.BrandCochlear, Name: "Freedom", Series: "Freedom", Image: "https://picsum.photos/seed/free/400/400", Description: "Classic durability."},
		{ID: "n5", Brand: domain.BrandCochlear, Name: "Nucleus 5", Series: "N5", Image: "https://picsum.photos/seed/n5/400/400", Description: "Robust & Water resistant."},
		{ID: "n6", Brand: domain.BrandCochlear, Name: "Nucleus 6", Series: "N6", Image: "https://picsum.photos/seed/n6/400/400", Description: "Smart sound processing."},
		{ID: "n7", Brand: domain.BrandCochlear, Name: "Nucleus 7", Series: "N7", Image: "https://picsum.photos/seed/n7/400/400", Description: "Made for iPhone & Android."},
		{ID: "n8", Brand: domain.BrandCochlear, Name: "Nucleus 8", Series: "N8", Image: "https://picsum.photos/seed/n8/400/400", Description: "Smaller. Smarter. Connected."},

		// Med-El
		{ID: "opus1", Brand: domain.BrandMedEl, Name: "Opus 1", Series: "Opus 1", Image: "https://picsum.photos/seed/opus1/400/400", Description: "The original."},
		{ID: "opus2", Brand: domain.BrandMedEl, Name: "Opus 2", Series: "Opus 2", Image: "https://picsum.photos/seed/opus2/400/400", Description: "Versatile control."},
		{ID: "sonnet1", Brand: domain.BrandMedEl, Name: "Sonnet 1", Series: "Sonnet 1", Image: "https://picsum.photos/seed/sonnet1/400/400", Description: "Natural hearing."},
		{ID: "sonnet2", Brand: domain.BrandMedEl, Name: "Sonnet 2", Series: "Sonnet 2", Image: "https://picsum.photos/seed/sonnet2/400/400", Description: "Made for you."},
	}
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: "power", Name: "Power", SubTitle: "Batteries & Chargers", Icon: "Battery", Color: "bg-green-100 text-green-600"},
		{ID: "connect", Name: "Connect", SubTitle: "Cables & Coils", Icon: "Cable", Color: "bg-blue-100 text-blue-600"},
		{ID: "care", Name: "Care", SubTitle: "Drying & Protection", Icon: "Droplets", Color: "bg-cyan-100 text-cyan-600"},
		{ID: "go", Name: "Go", SubTitle: "Wireless Accessories", Icon: "Wifi", Color: "bg-purple-100 text-purple-600"},
	}
}

func seedPosts() []domain.BlogPost {
	return []domain.BlogPost{
		{
			ID:       "b1",
			Title:    "Don't Let a Dead Battery Silence Your World",
			Excerpt:  "The average user loses 300 hours of hearing a year due to poor battery management. Here is how to reclaim your time.",
			Content:  "Full article content...",
			Image:    "https://picsum.photos/seed/blog1/600/400",
			Author:   "Expert Team",
			Date:     "Oct 12, 2023",
			ReadTime: "3 min read",
			Category: "Expert Advice",
		},
		{
			ID:       "b2",
			Title:    `Why "Cheap" Cables Are Costing You More`,
			Excerpt:  "Intermittent sound? Static? It might not be your processor. Discover why original cables are critical for signal clarity.",
			Content:  "Full article content...",
			Image:    "https://picsum.photos/seed/blog2/600/400",
			Author:   "Tech Support",
			Date:     "Sep 28, 2023",
			ReadTime: "4 min read",
			Category: "Product Reality",
		},
		{
			ID:       "b3",
			Title:    "Summer is Coming: Is Your Processor Ready?",
			Excerpt:  "Sweat and humidity are the silent killers of electronics. The $15 investment that saves you a $2000 repair.",
			Content:  "Full article content...",
			Image:    "https://picsum.photos/seed/blog3/600/400",
			Author:   "Lifestyle Team",
			Date:     "Aug 15, 2023",
			ReadTime: "2 min read",
			Category: "Protection",
		},
	}
}

// seedProducts is the full product list. Prices are integer cents.
func seedProducts() []domain.Product {
	return []domain.Product{
		// Bulk deals
		{
			ID:                 "bulk_p675_300",
			Name:               "PowerOne Implant Plus - Year Supply (300 Cells)",
			Description:        "Never run out again. The ultimate bulk saver pack.",
			SalesHook:          "Stop buying batteries every month. Save 30% and secure your hearing for a full year today.",
			LongDescription:    "Secure your hearing for a whole year. This master carton contains 5 boxes of 60 cells each. Guaranteed fresh dates.",
			Features:           []string{"Save 25% vs single packs", "Freshness Guaranteed (3+ Years Expiry)", "Priority Free Shipping"},
			Specs:              map[string]string{"Quantity": "300 Cells", "Type": "P675", "Brand": "PowerOne"},
			PriceCents:         19900,
			OriginalPriceCents: 27500,
			Rating:             5.0,
			Reviews:            89,
			Image:              "https://picsum.photos/seed/bulk300/400/400",
			Category:           "Batteries",
			Badge:              "Mega Saver",
			Compatibility:      []string{domain.CompatibilityUniversal},
			HSAEligible:        true,
			Bulk:               true,
			UnitPrice:          "$0.66 / cell",
		},
		{
			ID:                 "bulk_dry_kit",
			Name:               "Ultimate Care Bundle: Drying Kit + 24 Bricks",
			Description:        "Complete moisture protection system for 12 months.",
			SalesHook:          "Moisture is the #1 cause of processor failure. Protect your $10,000 device for just pennies a day.",
			PriceCents:         6500,
			OriginalPriceCents: 8500,
			Rating:             4.8,
			Reviews:            34,
			Image:              "https://picsum.photos/seed/drybundle/400/400",
			Category:           "Drying Care",
			Badge:              "Bundle Deal",
			Compatibility:      []string{domain.CompatibilityUniversal},
			HSAEligible:        true,
			Bulk:               true,
		},

		// Batteries
		{
			ID:                 "b1",
			Name:               "PowerOne Implant Plus P675 - Box of 60",
			Description:        "High power zinc air batteries. The gold standard.",
			SalesHook:          "The world's most reliable implant battery. Consistent power for high-demand processors.",
			LongDescription:    "Zinc Air batteries designed specifically for cochlear implants. These provide high energy density for consistent performance.",
			Features:           []string{"Mercury Free", "High Energy Density", "Long shelf life"},
			PriceCents:         4500,
			OriginalPriceCents: 5500,
			Rating:             4.9,
			Reviews:            1240,
			ReviewsList: []domain.Review{
				{ID: "r1", Author: "Verified Buyer", Date: "Mar 3, 2024", Rating: 5, Title: "Reliable power", Content: "Perfect fit for my device. Shipping was surprisingly fast.", Verified: true},
				{ID: "r2", Author: "Verified Buyer", Date: "Jan 19, 2024", Rating: 5, Title: "Long lasting", Content: "Cells arrive fresh and last noticeably longer than the pharmacy brand.", Verified: true},
			},
			Image:         "https://picsum.photos/seed/p675/400/400",
			Category:      "Batteries",
			Badge:         "Best Seller",
			Compatibility: []string{domain.CompatibilityUniversal},
			HSAEligible:   true,
			UnitPrice:     "$0.75 / cell",
			Options: &domain.ProductOptions{
				Capacities: []string{"230mAh (Standard)", "300mAh (High Power)"},
				Colors: []domain.ColorOption{
					{Name: "Silver", Hex: "#E2E8F0"},
					{Name: "Black", Hex: "#000000"},
				},
			},
		},

		// Advanced Bionics
		{
			ID:              "ab1",
			Name:            "UHP Cable for Naida CI",
			Description:     "Universal Headpiece cable. Durable and flexible.",
			SalesHook:       "Experience static-free sound. Reinforced design for 2x longer lifespan than standard cables.",
			LongDescription: "The Universal Headpiece (UHP) cable connects your processor to the headpiece. Designed with reinforced connectors to withstand daily wear and tear.",
			Features:        []string{"Reinforced Strain Relief", "Gold-plated contacts", "Tangle-free coating"},
			PriceCents:      6500,
			Rating:          4.5,
			Reviews:         42,
			Image:           "https://picsum.photos/seed/uhpcable/400/400",
			Category:        "Coils & Cables",
			Compatibility:   []string{"Naida Q90", "Naida Q70", "Naida Q30", "Harmony"},
			HSAEligible:     true,
			Options: &domain.ProductOptions{
				Colors: []domain.ColorOption{
					{Name: "Black", Hex: "#000000"},
					{Name: "Beige", Hex: "#E5D6C4"},
					{Name: "Brown", Hex: "#5D4037"},
					{Name: "White", Hex: "#FFFFFF"},
				},
				Sizes: []string{"6cm", "8.5cm", "11cm", "14cm", "24cm"},
			},
		},
		{
			ID:                 "ab2",
			Name:               "AquaCase for Naida",
			Description:        "IP68 Waterproof case for swimming.",
			SalesHook:          "Swim, surf, and shower with confidence. The only case you need for a worry-free summer.",
			PriceCents:         18000,
			OriginalPriceCents: 21000,
			Rating:             4.9,
			Reviews:            88,
			Image:              "https://picsum.photos/seed/aquacase/400/400",
			Category:           "Covers & Skins",
			Badge:              "Summer Ready",
			Compatibility:      []string{"Naida Q90", "Naida Q70"},
		},
		{
			ID:            "ab3",
			Name:          "Slim HP Color Cap",
			Description:   "Replacement color cap for Headpiece.",
			SalesHook:     "Personalize your look instantly. Snap-on colors to match your hair or style.",
			PriceCents:    2500,
			Rating:        4.4,
			Reviews:       15,
			Image:         "https://picsum.photos/seed/abcap/400/400",
			Category:      "Coils & Cables",
			Compatibility: []string{"Marvel", "Naida Q90"},
			HSAEligible:   true,
			Options: &domain.ProductOptions{
				Colors: []domain.ColorOption{
					{Name: "Alpine White", Hex: "#FFFFFF"},
					{Name: "Onyx Black", Hex: "#000000"},
					{Name: "Ruby Red", Hex: "#C60C30"},
					{Name: "Blue Ocean", Hex: "#00A4E4"},
				},
			},
		},

		// Cochlear
		{
			ID:            "c1",
			Name:          "Slimline Coil Cable",
			Description:   "Lightweight coil cable.",
			SalesHook:     "So light you will forget it is there. The official low-profile cable for maximum comfort.",
			PriceCents:    4500,
			Rating:        4.6,
			Reviews:       85,
			Image:         "https://picsum.photos/seed/cable1/400/400",
			Category:      "Coils & Cables",
			Compatibility: []string{"N7", "N8"},
			HSAEligible:   true,
			Options: &domain.ProductOptions{
				Colors: []domain.ColorOption{
					{Name: "Black", Hex: "#000000"},
					{Name: "Beige", Hex: "#E5D6C4"},
					{Name: "Grey", Hex: "#808080"},
					{Name: "Brown", Hex: "#5D4037"},
				},
				Sizes: []string{"6cm", "8cm", "11cm", "25cm"},
			},
		},
		{
			ID:            "c2",
			Name:          "Nucleus 5/6 Coil Cable",
			Description:   "Standard coil cable replacement.",
			SalesHook:     "Restore your sound clarity. Genuine replacement part guarantees zero interference.",
			PriceCents:    4200,
			Rating:        4.8,
			Reviews:       310,
			Image:         "https://picsum.photos/seed/n5cable/400/400",
			Category:      "Coils & Cables",
			Compatibility: []string{"N5", "N6"},
			HSAEligible:   true,
			Options: &domain.ProductOptions{
				Colors: []domain.ColorOption{
					{Name: "Black", Hex: "#000000"},
					{Name: "Beige", Hex: "#E5D6C4"},
					{Name: "White", Hex: "#FFFFFF"},
				},
				Sizes: []string{"6cm", "8cm", "11cm"},
			},
		},
		{
			ID:            "c3",
			Name:          "Freedom Bodyworn Cable (Long)",
			Description:   "Rare vintage cable for bodyworn config.",
			SalesHook:     "Hard to find? We have it in stock. Keep your trusted Freedom processor running.",
			PriceCents:    8500,
			Rating:        4.2,
			Reviews:       8,
			Image:         "https://picsum.photos/seed/freedom/400/400",
			Category:      "Coils & Cables",
			Badge:         "Rare",
			Compatibility: []string{"Freedom"},
			HSAEligible:   true,
		},

		// Med-El
		{
			ID:            "me1",
			Name:          "DL-Coil Cover",
			Description:   "Decorative cover for DL-Coil.",
			SalesHook:     "Style your Sonnet. Durable covers that protect and personalize.",
			PriceCents:    1500,
			Rating:        4.3,
			Reviews:       20,
			Image:         "https://picsum.photos/seed/dlcoil/400/400",
			Category:      "Covers & Skins",
			Compatibility: []string{"Sonnet 2", "Sonnet 1", "Opus 2"},
			HSAEligible:   true,
			Options: &domain.ProductOptions{
				Colors: []domain.ColorOption{
					{Name: "Black", Hex: "#000000"},
					{Name: "Anthracite", Hex: "#333333"},
					{Name: "Nordic Grey", Hex: "#CCCCCC"},
					{Name: "White", Hex: "#FFFFFF"},
					{Name: "Bordeaux Red", Hex: "#800000"},
				},
			},
		},
		{
			ID:            "me2",
			Name:          "WaterWear for Sonnet/Opus",
			Description:   "Reusable waterproof skins (Pack of 3).",
			SalesHook:     "Dive in. Fully waterproof protection for up to 9 hours per use.",
			PriceCents:    4900,
			Rating:        4.6,
			Reviews:       55,
			Image:         "https://picsum.photos/seed/waterwear/400/400",
			Category:      "Covers & Skins",
			Badge:         "Essential",
			Compatibility: []string{"Sonnet 2", "Sonnet 1", "Opus 2", "Opus 1"},
			HSAEligible:   true,
		},
		{
			ID:            "me3",
			Name:          "FineTuner Echo Remote",
			Description:   "Remote control for Med-El processors.",
			SalesHook:     "Take control. Adjust volume and sensitivity with pocket-sized convenience.",
			PriceCents:    15000,
			Rating:        4.7,
			Reviews:       10,
			Image:         "https://picsum.photos/seed/remote/400/400",
			Category:      "Wireless",
			Compatibility: []string{"Sonnet 2", "Sonnet 1"},
			HSAEligible:   true,
		},

		// Accessories
		{
			ID:            "acc1",
			Name:          "Drying Capsules (Pack of 4)",
			Description:   "Desiccant bricks for drying kits.",
			SalesHook:     "Absorb moisture instantly. Essential for preventing corrosion in your processor.",
			PriceCents:    1299,
			Rating:        4.8,
			Reviews:       500,
			Image:         "https://picsum.photos/seed/bricks/400/400",
			Category:      "Drying Care",
			Compatibility: []string{domain.CompatibilityUniversal},
			HSAEligible:   true,
		},
		{
			ID:            "w1",
			Name:          "Mini Microphone 2+",
			Description:   "Stream speech directly to processor.",
			SalesHook:     "Hear in noise like never before. Ideal for classrooms, restaurants, and meetings.",
			PriceCents:    24500,
			Rating:        4.7,
			Reviews:       210,
			Image:         "https://picsum.photos/seed/mic/400/400",
			Category:      "Wireless",
			Compatibility: []string{"N7", "N8", "N6", "Marvel"},
			HSAEligible:   true,
		},
	}
}
