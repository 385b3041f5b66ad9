package model

// Course is an affiliate course in the catalog
type Course struct {
	ID           string   `json:"id" bson:"_id,omitempty"`
	Title        string   `json:"title" bson:"title"`
	Description  string   `json:"description" bson:"description"`
	AffiliateURL string   `json:"affiliateUrl" bson:"affiliateUrl"`
	Category     []string `json:"category" bson:"category"`
	Skills       []string `json:"skills" bson:"skills"`
	Industries   []string `json:"industries" bson:"industries"`
	Level        string   `json:"level" bson:"level"` // beginner, intermediate, advanced
	Rating       float64  `json:"rating" bson:"rating"`
	Students     string   `json:"students" bson:"students"`
}
