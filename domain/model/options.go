package model

// Option is an (id, display name) pair exposed to the dashboard selectors.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Platform describes a trending source and whether it is wired.
type Platform struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

var Categories = []Option{
	{ID: "0", Name: "All Categories"},
	{ID: "1", Name: "Film & Animation"},
	{ID: "2", Name: "Autos & Vehicles"},
	{ID: "10", Name: "Music"},
	{ID: "15", Name: "Pets & Animals"},
	{ID: "17", Name: "Sports"},
	{ID: "19", Name: "Travel & Events"},
	{ID: "20", Name: "Gaming"},
	{ID: "22", Name: "People & Blogs"},
	{ID: "23", Name: "Comedy"},
	{ID: "24", Name: "Entertainment"},
	{ID: "25", Name: "News & Politics"},
	{ID: "26", Name: "Howto & Style"},
	{ID: "27", Name: "Education"},
	{ID: "28", Name: "Science & Technology"},
	{ID: "29", Name: "Nonprofits & Activism"},
}

var Regions = []Option{
	{ID: "US", Name: "United States"},
	{ID: "GB", Name: "United Kingdom"},
	{ID: "CA", Name: "Canada"},
	{ID: "AU", Name: "Australia"},
	{ID: "IN", Name: "India"},
	{ID: "JP", Name: "Japan"},
	{ID: "KR", Name: "South Korea"},
	{ID: "BR", Name: "Brazil"},
	{ID: "FR", Name: "France"},
	{ID: "DE", Name: "Germany"},
	{ID: "IT", Name: "Italy"},
	{ID: "ES", Name: "Spain"},
	{ID: "RU", Name: "Russia"},
	{ID: "MX", Name: "Mexico"},
}

var SortOptions = []Option{
	{ID: string(SortRelevance), Name: "Relevance"},
	{ID: string(SortViews), Name: "Most Views"},
	{ID: string(SortLikes), Name: "Most Likes"},
	{ID: string(SortComments), Name: "Most Comments"},
}

// Platforms lists trending sources. Only YouTube is backed by a catalog client.
var Platforms = []Platform{
	{ID: "youtube", Name: "YouTube", Available: true},
	{ID: "twitter", Name: "Twitter", Available: false},
	{ID: "tiktok", Name: "TikTok", Available: false},
}

func IsKnownCategory(id string) bool { return hasOption(Categories, id) }
func IsKnownRegion(code string) bool { return hasOption(Regions, code) }
func IsKnownSortKey(k SortKey) bool  { return hasOption(SortOptions, string(k)) }

func hasOption(opts []Option, id string) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}
