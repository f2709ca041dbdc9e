package schema

import (
	"fmt"
	"strings"

	"github.com/doffn/image-json-generator/pkg/formstate"
)

func personTemplate() *Template {
	return &Template{
		Category:    Person,
		Label:       "Realistic Person(s)",
		Description: "Define demographics, features, and fashion for one or more subjects.",
		Fields: []Field{
			{ID: "age", Label: "Age", Placeholder: "e.g., 25 years old", Section: "Subject"},
			{ID: "gender", Label: "Gender", Placeholder: "e.g., Female", Section: "Subject"},
			{ID: "ethnicity", Label: "Ethnicity", Placeholder: "e.g., Japanese-French mix", Section: "Subject"},
			{ID: "hair", Label: "Hair Style", Placeholder: "e.g., Platinum blonde bob", Section: "Features"},
			{ID: "eyes", Label: "Eye Details", Placeholder: "e.g., Heterochromia, sharp gaze", Section: "Features"},
		},
		ArrayFields: []Field{
			{ID: "outfit", Label: "Outfit Items", Placeholder: "e.g., Cyberpunk raincoat", Section: "Apparel"},
			{ID: "pose", Label: "Pose & Action", Placeholder: "e.g., Looking over shoulder", Section: "Composition"},
		},
		GlobalFields: []Field{
			{ID: "location", Label: "Location", Placeholder: "e.g., Rainy neon street", Section: "Environment"},
			{ID: "lighting", Label: "Lighting", Placeholder: "e.g., Cyan and magenta reflections", Section: "Environment"},
			{ID: "camera", Label: "Camera Lens", Placeholder: "e.g., 85mm portrait lens", Section: "Technical"},
			{ID: "style", Label: "Art Style", Placeholder: "e.g., photorealistic", Section: "Technical"},
		},
		NewState: func() *formstate.FormState {
			return formstate.NewPerson(formstate.SubjectsState{
				Subjects:    []formstate.Subject{formstate.DefaultSubject()},
				Environment: formstate.Environment{Location: "city park", Lighting: "daylight"},
				Technical:   formstate.Technical{Camera: "50mm lens", Style: "photorealistic"},
			})
		},
		Example:  personExample,
		Generate: generatePerson,
	}
}

func generatePerson(s *formstate.FormState) (Document, error) {
	if s == nil || s.Person == nil {
		return nil, fmt.Errorf("schema: person template requires a subjects state")
	}
	data := s.Person
	subjects := make([]PersonSubject, 0, len(data.Subjects))
	for _, subj := range data.Subjects {
		subjects = append(subjects, PersonSubject{
			Type: "person",
			Demographics: Demographics{
				Age:       orDefault(subj.Age, "unspecified"),
				Gender:    orDefault(subj.Gender, "unspecified"),
				Ethnicity: orDefault(subj.Ethnicity, "unspecified"),
			},
			PhysicalFeatures: PhysicalFeatures{
				Hair: orDefault(subj.Hair, "natural"),
				Eyes: orDefault(subj.Eyes, "natural"),
			},
			Apparel: Described{Description: joinNonEmpty(subj.Outfit, ", ", "casual clothing")},
			Pose:    Described{Description: joinNonEmpty(subj.Pose, " and ", "standing neutral")},
		})
	}
	return PersonDocument{
		Action:   "generate_image",
		Subjects: subjects,
		Environment: PersonEnvironment{
			Location: orDefault(data.Environment.Location, "studio background"),
			Lighting: orDefault(data.Environment.Lighting, "soft studio lighting"),
		},
		Technical: PersonTechnical{
			Camera: orDefault(data.Technical.Camera, "50mm lens"),
			Style:  orDefault(data.Technical.Style, "photorealistic"),
		},
		CustomSettings: customSettings(data.CustomFields),
	}, nil
}

func brochureTemplate() *Template {
	return &Template{
		Category:    Brochure,
		Label:       "Brochure Mockup",
		Description: "Layouts for tri-folds, bi-folds, and print materials.",
		Fields: []Field{
			{ID: "type", Label: "Brochure Type", Placeholder: "e.g., Tri-fold, Bi-fold, Z-fold", Section: "Object"},
			{ID: "state", Label: "State/View", Placeholder: "e.g., Slightly open, lying flat", Section: "Object"},
			{ID: "foldStyle", Label: "Fold Style/Creases", Placeholder: "e.g., Clean creases, worn edges", Section: "Object"},
			{ID: "theme", Label: "Design Theme", Placeholder: "e.g., Minimalist Medical, Retro Travel", Section: "Design Specs"},
			{ID: "colors", Label: "Color Palette (Comma Separated)", Placeholder: "e.g., Teal, White, Grey", Section: "Design Specs"},
			{ID: "fontStyle", Label: "Font Style", Placeholder: "e.g., Bold Serif, Clean Sans-serif", Section: "Design Specs"},
			{ID: "background", Label: "Background/Surface", Placeholder: "e.g., Clean white studio, concrete table", Section: "Render"},
		},
		ArrayFields: []Field{
			{ID: "contentPanels", Label: "Content Sections/Panels", Placeholder: "e.g., Headline, Body Text, CTA, Image", Section: "Layout"},
		},
		NewState: func() *formstate.FormState {
			return formstate.NewFlat(formstate.FlatState{
				Values: map[string]string{
					"type":       "Tri-fold",
					"state":      "Slightly open, standing",
					"theme":      "Minimalist Medical",
					"colors":     "Teal, White, Grey",
					"background": "Clean white studio",
					"fontStyle":  "Modern Sans-serif",
					"foldStyle":  "Z-fold, clean creases",
				},
				Items: map[string][]formstate.Item{
					"contentPanels": {
						formstate.NewItem("Cover Headline: INNOVATION"),
						formstate.NewItem("Inner Panel: Key Features"),
					},
				},
			})
		},
		Example:  brochureExample,
		Generate: generateBrochure,
	}
}

func generateBrochure(s *formstate.FormState) (Document, error) {
	data, err := flatData(s, Brochure)
	if err != nil {
		return nil, err
	}
	return BrochureDocument{
		Task: "design_mockup",
		Object: BrochureObject{
			Type:        orDefault(data.Values["type"], "tri-fold brochure"),
			State:       orDefault(data.Values["state"], "lying flat"),
			FoldStyle:   orDefault(data.Values["foldStyle"], "clean creases"),
			Perspective: "isometric view",
		},
		DesignSpecs: DesignSpecs{
			ColorPalette: splitList(data.Values["colors"], []string{"blue", "white"}),
			Theme:        orDefault(data.Values["theme"], "modern corporate"),
			Typography:   orDefault(data.Values["fontStyle"], "clean sans-serif"),
		},
		ContentLayout: ContentLayout{Panels: itemValues(data.Items["contentPanels"])},
		RenderQuality: RenderQuality{
			Background: orDefault(data.Values["background"], "solid color"),
			Lighting:   "studio softbox",
			Resolution: "4k product render",
		},
		CustomSettings: customSettings(data.CustomFields),
	}, nil
}

func stickerTemplate() *Template {
	return &Template{
		Category:    Sticker,
		Label:       "Sticker Design",
		Description: "Die-cut stickers, emojis, and vector art.",
		Fields: []Field{
			{ID: "subject", Label: "Subject/Icon", Placeholder: "e.g., Holographic skull", Section: "Content"},
			{ID: "emotion", Label: "Emotion/Action", Placeholder: "e.g., Happy, flying, winking", Section: "Content"},
			{ID: "text", Label: "Text/Caption", Placeholder: `e.g., "Gamer Life"`, Section: "Content"},
			{ID: "textPlacement", Label: "Text Placement", Placeholder: "e.g., Below Subject, Wrapped Around", Section: "Content"},
			{ID: "style", Label: "Art Style", Placeholder: "e.g., Kawaii, Vector, Graffiti", Section: "Style"},
			{ID: "palette", Label: "Colors (Comma Separated)", Placeholder: "e.g., Pastel pinks and purples", Section: "Style"},
			{ID: "border", Label: "Border", Placeholder: "e.g., Thick white die-cut border", Section: "Output Specs"},
			{ID: "texture", Label: "Texture/Finish", Placeholder: "e.g., Matte vinyl finish, holographic", Section: "Output Specs"},
		},
		NewState: func() *formstate.FormState {
			return formstate.NewFlat(formstate.FlatState{
				Values: map[string]string{
					"subject":       "Cute robot cat",
					"emotion":       "Happy",
					"style":         "Kawaii Vector",
					"border":        "Thick white die-cut border",
					"palette":       "Pastel pinks and purples",
					"text":          "Hello World",
					"texture":       "Matte vinyl finish",
					"textPlacement": "Below Subject",
				},
			})
		},
		Example:  stickerExample,
		Generate: generateSticker,
	}
}

func generateSticker(s *formstate.FormState) (Document, error) {
	data, err := flatData(s, Sticker)
	if err != nil {
		return nil, err
	}
	return StickerDocument{
		Type: "sticker_design",
		Subject: StickerSubject{
			Description: orDefault(data.Values["subject"], "icon"),
			Expression:  orDefault(data.Values["emotion"], "neutral"),
		},
		StyleSpecs: StickerStyle{
			ArtStyle:    orDefault(data.Values["style"], "flat vector"),
			ColorScheme: splitList(data.Values["palette"], []string{"vibrant"}),
			Caption:     data.Values["text"],
		},
		Technical: StickerTechnical{
			BorderType:       orDefault(data.Values["border"], "white die-cut outline"),
			Render:           "2D vector illustration",
			Finish:           orDefault(data.Values["texture"], "matte vinyl texture"),
			CaptionPlacement: orDefault(data.Values["textPlacement"], "transparent background"),
		},
		CustomSettings: customSettings(data.CustomFields),
	}, nil
}

func adTemplate() *Template {
	return &Template{
		Category:    Advertisement,
		Label:       "Banner/Display Ad",
		Description: "Digital advertisements for websites, social media, and apps.",
		Fields: []Field{
			{ID: "product", Label: "Product/Service", Placeholder: "e.g., Luxury Perfume", Section: "Campaign"},
			{ID: "type", Label: "Ad Format", Placeholder: "e.g., Banner Ad, Display Ad, Skyscraper", Section: "Campaign"},
			{ID: "audience", Label: "Target Audience", Placeholder: "e.g., Millennials, Home Owners", Section: "Campaign"},
			{ID: "size", Label: "Ad Size/Ratio", Placeholder: "e.g., 300x250 (Medium Rectangle), 16:9", Section: "Placement"},
			{ID: "placement", Label: "Placement/Context", Placeholder: "e.g., Top of website, inside mobile app", Section: "Placement"},
			{ID: "headline", Label: "Headline Copy", Placeholder: "e.g., SMELL LIKE VICTORY", Section: "Copy"},
			{ID: "cta", Label: "Call to Action", Placeholder: "e.g., Shop Now button", Section: "Copy"},
			{ID: "visual", Label: "Main Visual", Placeholder: "e.g., Bottle splashing in water", Section: "Creative"},
			{ID: "mood", Label: "Mood/Tone", Placeholder: "e.g., Energetic, Luxurious", Section: "Creative"},
		},
		NewState: func() *formstate.FormState {
			return formstate.NewFlat(formstate.FlatState{
				Values: map[string]string{
					"product":   "Electric Sports Car",
					"type":      "Banner Ad",
					"size":      "728x90 (Leaderboard)",
					"headline":  "SILENCE IS FAST",
					"cta":       "Test Drive Today",
					"visual":    "Car blurring through a tunnel of light",
					"mood":      "High energy, futuristic",
					"audience":  "Tech Enthusiasts, 25-45",
					"placement": "Top of website, centered",
				},
			})
		},
		Example:  adExample,
		Generate: generateAd,
	}
}

func generateAd(s *formstate.FormState) (Document, error) {
	data, err := flatData(s, Advertisement)
	if err != nil {
		return nil, err
	}
	return AdDocument{
		Task: "generate_digital_advertisement",
		CampaignSpecs: CampaignSpecs{
			Product:        orDefault(data.Values["product"], "Generic Product"),
			Format:         orDefault(data.Values["type"], "Banner Ad"),
			TargetAudience: orDefault(data.Values["audience"], "general"),
		},
		CreativeElements: CreativeElements{
			MainVisual:   orDefault(data.Values["visual"], "product shot"),
			Mood:         orDefault(data.Values["mood"], "engaging"),
			SizeAndRatio: orDefault(data.Values["size"], "1:1 square"),
		},
		CopyElements: CopyElements{
			Headline:         orDefault(data.Values["headline"], "HEADLINE GOES HERE"),
			CTAButton:        orDefault(data.Values["cta"], "Learn More"),
			PlacementContext: orDefault(data.Values["placement"], "generic website placement"),
			FontStyle:        "bold legible",
		},
		CustomSettings: customSettings(data.CustomFields),
	}, nil
}

func flatData(s *formstate.FormState, c Category) (*formstate.FlatState, error) {
	if s == nil || s.Flat == nil {
		return nil, fmt.Errorf("schema: %s template requires a flat state", c)
	}
	return s.Flat, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// joinNonEmpty joins the non-empty entries with sep, falling back to def
// when nothing remains.
func joinNonEmpty(values []string, sep, def string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return def
	}
	return strings.Join(kept, sep)
}

// splitList splits a comma-separated value into trimmed entries, falling
// back to def when the value is empty.
func splitList(csv string, def []string) []string {
	if csv == "" {
		return def
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func itemValues(items []formstate.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Value != "" {
			out = append(out, item.Value)
		}
	}
	return out
}

// customSettings folds user-defined pairs into a map, skipping entries
// missing either half. Later duplicates of a key overwrite earlier ones.
// Returns nil when nothing qualifies so the document omits the block.
func customSettings(fields []formstate.CustomField) map[string]string {
	var out map[string]string
	for _, f := range fields {
		if f.Key == "" || f.Value == "" {
			continue
		}
		if out == nil {
			out = map[string]string{}
		}
		out[f.Key] = f.Value
	}
	return out
}
