package server

// Service is one of the business services offered to creators.
type Service struct {
	Title       string
	Description string
	Features    []string
}

// Audience is a creator segment the organization serves.
type Audience struct {
	Title       string
	Description string
}

var siteServices = []Service{
	{
		Title:       "Brand Development",
		Description: "Build a distinctive brand identity that resonates with your audience and stands out in the market.",
		Features: []string{
			"Logo design & visual identity",
			"Brand strategy & positioning",
			"Marketing materials",
			"Brand guidelines",
			"Digital presence setup",
		},
	},
	{
		Title:       "Business Formation",
		Description: "Navigate the complexities of establishing your creative business with expert guidance.",
		Features: []string{
			"LLC filing assistance",
			"Entity structure guidance",
			"Compliance support",
			"Contract templates",
			"Legal resource access",
		},
	},
	{
		Title:       "Sales Representation",
		Description: "Connect with the right buyers and opportunities through our network and advocacy.",
		Features: []string{
			"Direct sales outreach",
			"Customer acquisition",
			"Deal negotiation",
			"Relationship management",
			"Pipeline development",
		},
	},
	{
		Title:       "Marketing Strategy",
		Description: "Develop targeted marketing plans that amplify your work without breaking the bank.",
		Features: []string{
			"Market research",
			"Campaign planning",
			"Channel strategy",
			"Content calendars",
			"Performance tracking",
		},
	},
	{
		Title:       "Content Creation",
		Description: "Professional support for creating compelling content that tells your story.",
		Features: []string{
			"Video production",
			"Photography",
			"Social media content",
			"Editing & post-production",
			"Content strategy",
		},
	},
	{
		Title:       "Creator Education",
		Description: "Learn the business skills you need to thrive as an independent creative.",
		Features: []string{
			"Rights education",
			"Business fundamentals",
			"Contract review guidance",
			"Financial literacy",
			"Industry navigation",
		},
	},
}

var siteAudiences = []Audience{
	{
		Title:       "Inventors",
		Description: "Patent holders and product developers with working products that need sales, marketing, and business structure.",
	},
	{
		Title:       "Musicians",
		Description: "Independent artists, producers, and bands who need management, marketing, touring support, and merchandise systems.",
	},
	{
		Title:       "Visual Artists",
		Description: "Painters, illustrators, photographers, and digital artists who need help selling work and building collector bases.",
	},
	{
		Title:       "Designers",
		Description: "Industrial, fashion, and UX/UI designers with products and services that need market positioning and sales channels.",
	},
	{
		Title:       "Writers",
		Description: "Authors, screenwriters, and content creators who need publishing support, platform building, and rights protection.",
	},
}
