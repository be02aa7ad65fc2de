package models

const (
	BlogDrops    = "drops"
	BlogCollabs  = "collabs"
	BlogConseils = "conseils"
)

var BlogCategories = []string{BlogDrops, BlogCollabs, BlogConseils}

// BlogPost es una entrada del blog / actualidad
type BlogPost struct {
	Title      string  `json:"title" bson:"title"`
	Slug       string  `json:"slug" bson:"slug"`
	Content    string  `json:"content" bson:"content"`
	Category   string  `json:"category" bson:"category"`
	CoverImage *string `json:"cover_image" bson:"cover_image"`
	Published  bool    `json:"published" bson:"published"`
}

func (BlogPost) EntityName() string { return "BlogPost" }

type BlogPostInput struct {
	Title      string  `json:"title"`
	Slug       string  `json:"slug"`
	Content    string  `json:"content"`
	Category   string  `json:"category,omitempty"`
	CoverImage *string `json:"cover_image,omitempty"`
	Published  *bool   `json:"published,omitempty"`
}

func NewBlogPost(in BlogPostInput) (*BlogPost, error) {
	c := &checker{}
	c.required("title", in.Title)
	c.required("slug", in.Slug)
	c.required("content", in.Content)
	category := stringOr(in.Category, BlogDrops)
	c.oneOf("category", category, BlogCategories)

	if err := c.err(); err != nil {
		return nil, err
	}
	return &BlogPost{
		Title:      in.Title,
		Slug:       in.Slug,
		Content:    in.Content,
		Category:   category,
		CoverImage: in.CoverImage,
		Published:  boolOr(in.Published, true),
	}, nil
}
