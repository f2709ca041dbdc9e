package schema

// Document is a generated prompt document. Each category projects into its
// own concrete struct; the marker method keeps the set closed. Field order
// in the structs fixes the key order of the serialized JSON, with
// custom_settings always last and omitted when empty.
type Document interface {
	document()
}

// PersonDocument is the projection of the person template.
type PersonDocument struct {
	Action         string            `json:"action"`
	Subjects       []PersonSubject   `json:"subjects"`
	Environment    PersonEnvironment `json:"environment"`
	Technical      PersonTechnical   `json:"technical"`
	CustomSettings map[string]string `json:"custom_settings,omitempty"`
}

type PersonSubject struct {
	Type             string           `json:"type"`
	Demographics     Demographics     `json:"demographics"`
	PhysicalFeatures PhysicalFeatures `json:"physical_features"`
	Apparel          Described        `json:"apparel"`
	Pose             Described        `json:"pose"`
}

type Demographics struct {
	Age       string `json:"age"`
	Gender    string `json:"gender"`
	Ethnicity string `json:"ethnicity"`
}

type PhysicalFeatures struct {
	Hair string `json:"hair"`
	Eyes string `json:"eyes"`
}

// Described wraps a single free-text description.
type Described struct {
	Description string `json:"description"`
}

type PersonEnvironment struct {
	Location string `json:"location"`
	Lighting string `json:"lighting"`
}

type PersonTechnical struct {
	Camera string `json:"camera"`
	Style  string `json:"style"`
}

// BrochureDocument is the projection of the brochure template.
type BrochureDocument struct {
	Task           string            `json:"task"`
	Object         BrochureObject    `json:"object"`
	DesignSpecs    DesignSpecs       `json:"design_specs"`
	ContentLayout  ContentLayout     `json:"content_layout"`
	RenderQuality  RenderQuality     `json:"render_quality"`
	CustomSettings map[string]string `json:"custom_settings,omitempty"`
}

type BrochureObject struct {
	Type        string `json:"type"`
	State       string `json:"state"`
	FoldStyle   string `json:"fold_style"`
	Perspective string `json:"perspective"`
}

type DesignSpecs struct {
	ColorPalette []string `json:"color_palette"`
	Theme        string   `json:"theme"`
	Typography   string   `json:"typography"`
}

type ContentLayout struct {
	Panels []string `json:"panels"`
}

type RenderQuality struct {
	Background string `json:"background"`
	Lighting   string `json:"lighting"`
	Resolution string `json:"resolution"`
}

// StickerDocument is the projection of the sticker template.
type StickerDocument struct {
	Type           string            `json:"type"`
	Subject        StickerSubject    `json:"subject"`
	StyleSpecs     StickerStyle      `json:"style_specs"`
	Technical      StickerTechnical  `json:"technical"`
	CustomSettings map[string]string `json:"custom_settings,omitempty"`
}

type StickerSubject struct {
	Description string `json:"description"`
	Expression  string `json:"expression"`
}

type StickerStyle struct {
	ArtStyle    string   `json:"art_style"`
	ColorScheme []string `json:"color_scheme"`
	Caption     string   `json:"caption"`
}

type StickerTechnical struct {
	BorderType       string `json:"border_type"`
	Render           string `json:"render"`
	Finish           string `json:"finish"`
	CaptionPlacement string `json:"caption_placement"`
}

// AdDocument is the projection of the advertisement template.
type AdDocument struct {
	Task             string            `json:"task"`
	CampaignSpecs    CampaignSpecs     `json:"campaign_specs"`
	CreativeElements CreativeElements  `json:"creative_elements"`
	CopyElements     CopyElements      `json:"copy_elements"`
	CustomSettings   map[string]string `json:"custom_settings,omitempty"`
}

type CampaignSpecs struct {
	Product        string `json:"product"`
	Format         string `json:"format"`
	TargetAudience string `json:"target_audience"`
}

type CreativeElements struct {
	MainVisual   string `json:"main_visual"`
	Mood         string `json:"mood"`
	SizeAndRatio string `json:"size_and_ratio"`
}

type CopyElements struct {
	Headline         string `json:"headline"`
	CTAButton        string `json:"cta_button"`
	PlacementContext string `json:"placement_context"`
	FontStyle        string `json:"font_style"`
}

func (PersonDocument) document()   {}
func (BrochureDocument) document() {}
func (StickerDocument) document()  {}
func (AdDocument) document()       {}
