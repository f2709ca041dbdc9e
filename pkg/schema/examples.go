package schema

import "github.com/doffn/image-json-generator/pkg/formstate"

// Example presets: one fully filled showcase state per category, used by the
// builder's load-example action and by tests that need realistic data.

func personExample() *formstate.FormState {
	return formstate.NewPerson(formstate.SubjectsState{
		Subjects: []formstate.Subject{
			{
				ID:        formstate.NewID(),
				Age:       "28",
				Gender:    "Female",
				Ethnicity: "Cybernetic Android",
				Hair:      "Translucent fiber optic cables",
				Eyes:      "Glowing red LED rings",
				Outfit:    []string{"Distressed white ceramic armor plates", "Glowing blue visor"},
				Pose:      []string{"Floating in zero gravity", "Looking directly at the viewer"},
			},
			{
				ID:        formstate.NewID(),
				Age:       "60",
				Gender:    "Male",
				Ethnicity: "Mechanic",
				Hair:      "Greasy buzzcut",
				Eyes:      "Worn goggles",
				Outfit:    []string{"Dirty denim overalls", "Welding gloves"},
				Pose:      []string{"Crouching down", "Holding a wrench"},
			},
		},
		Environment: formstate.Environment{
			Location: "Inside a derelict space station",
			Lighting: "Harsh emergency strobe lights",
		},
		Technical: formstate.Technical{
			Camera: "Wide angle action shot",
			Style:  "cyberpunk, hyper-detailed",
		},
	})
}

func brochureExample() *formstate.FormState {
	return formstate.NewFlat(formstate.FlatState{
		Values: map[string]string{
			"type":       "Tri-fold menu",
			"state":      "standing upright, accordion style",
			"foldStyle":  "Clean, perfect creases",
			"theme":      "Rustic Italian Bistro",
			"colors":     "Burnt orange, olive green, cream",
			"background": "Wooden table surface",
			"fontStyle":  "Handwritten Serif",
		},
		Items: map[string][]formstate.Item{
			"contentPanels": {
				formstate.NewItem("Cover: Restaurant Logo and Name"),
				formstate.NewItem("Panel 2: Appetizers and Drinks List"),
				formstate.NewItem("Panel 3: Main Courses and Chefs Special"),
			},
		},
		CustomFields: []formstate.CustomField{
			{ID: formstate.NewID(), Key: "print_finish", Value: "Matte, textured paper"},
		},
	})
}

func stickerExample() *formstate.FormState {
	return formstate.NewFlat(formstate.FlatState{
		Values: map[string]string{
			"subject":       "Holographic skull",
			"emotion":       "Laughing",
			"style":         "Vaporwave Glitch Art",
			"border":        "Neon green glow outline",
			"palette":       "Cyan, Magenta, Yellow",
			"text":          "8-BIT HERO",
			"texture":       "Glossy metallic finish",
			"textPlacement": "Wrapped around subject",
		},
		CustomFields: []formstate.CustomField{
			{ID: formstate.NewID(), Key: "background_color", Value: "Dark purple"},
		},
	})
}

func adExample() *formstate.FormState {
	return formstate.NewFlat(formstate.FlatState{
		Values: map[string]string{
			"product":   "Electric Sports Car",
			"type":      "Display Ad",
			"size":      "1200x628 (Facebook Feed)",
			"headline":  "SILENCE IS FAST",
			"cta":       "Test Drive Today",
			"visual":    "Car blurring through a tunnel of light",
			"mood":      "High energy, futuristic",
			"audience":  "Affluent Buyers, Eco-Conscious",
			"placement": "Mobile app ad slot",
		},
		CustomFields: []formstate.CustomField{
			{ID: formstate.NewID(), Key: "animation_style", Value: "Subtle parallax effect"},
		},
	})
}
