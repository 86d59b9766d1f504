package mockdata

// Category is a seeded product category.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BrandCount  int     `json:"brand_count"`
	AvgScore    float64 `json:"avg_score"`
}

// Brand is a seeded brand with a precomputed sparkline.
type Brand struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	CategoryID      string    `json:"category_id"`
	VisibilityScore float64   `json:"visibility_score"`
	MentionCount    int       `json:"mention_count"`
	Sparkline       []float64 `json:"sparkline"`
}

// Categories is the static demo dataset shown before a backend exists.
var Categories = []Category{
	{ID: "crm", Name: "CRM Software", Description: "Customer relationship management platforms", BrandCount: 6, AvgScore: 61.4},
	{ID: "email-marketing", Name: "Email Marketing", Description: "Bulk email and campaign automation tools", BrandCount: 5, AvgScore: 55.2},
	{ID: "project-management", Name: "Project Management", Description: "Task tracking and team collaboration software", BrandCount: 6, AvgScore: 58.9},
	{ID: "accounting", Name: "Accounting Software", Description: "Bookkeeping and invoicing for small businesses", BrandCount: 4, AvgScore: 49.7},
	{ID: "video-conferencing", Name: "Video Conferencing", Description: "Online meetings and webinar platforms", BrandCount: 4, AvgScore: 63.1},
}

var Brands = []Brand{
	{ID: "salesforce", Name: "Salesforce", CategoryID: "crm", VisibilityScore: 89.2, MentionCount: 412, Sparkline: []float64{84.1, 86.3, 85.9, 88.2, 87.6, 88.9, 89.2}},
	{ID: "hubspot", Name: "HubSpot", CategoryID: "crm", VisibilityScore: 84.7, MentionCount: 376, Sparkline: []float64{80.2, 81.5, 83.0, 82.4, 83.8, 84.1, 84.7}},
	{ID: "pipedrive", Name: "Pipedrive", CategoryID: "crm", VisibilityScore: 62.3, MentionCount: 198, Sparkline: []float64{58.9, 60.1, 59.4, 61.2, 62.0, 61.7, 62.3}},
	{ID: "zoho-crm", Name: "Zoho CRM", CategoryID: "crm", VisibilityScore: 57.8, MentionCount: 164, Sparkline: []float64{55.0, 56.2, 57.1, 56.5, 57.3, 58.0, 57.8}},
	{ID: "freshsales", Name: "Freshsales", CategoryID: "crm", VisibilityScore: 41.5, MentionCount: 97, Sparkline: []float64{38.2, 39.7, 40.3, 41.1, 40.8, 41.2, 41.5}},
	{ID: "close", Name: "Close", CategoryID: "crm", VisibilityScore: 32.6, MentionCount: 58, Sparkline: []float64{29.4, 30.8, 31.2, 32.0, 31.7, 32.3, 32.6}},

	{ID: "mailchimp", Name: "Mailchimp", CategoryID: "email-marketing", VisibilityScore: 86.1, MentionCount: 389, Sparkline: []float64{82.7, 83.9, 84.6, 85.2, 85.8, 85.5, 86.1}},
	{ID: "klaviyo", Name: "Klaviyo", CategoryID: "email-marketing", VisibilityScore: 71.4, MentionCount: 243, Sparkline: []float64{66.8, 68.2, 69.5, 70.1, 70.9, 71.0, 71.4}},
	{ID: "convertkit", Name: "ConvertKit", CategoryID: "email-marketing", VisibilityScore: 54.9, MentionCount: 141, Sparkline: []float64{51.2, 52.4, 53.1, 53.8, 54.2, 54.5, 54.9}},
	{ID: "brevo", Name: "Brevo", CategoryID: "email-marketing", VisibilityScore: 43.2, MentionCount: 102, Sparkline: []float64{40.1, 41.3, 41.9, 42.5, 42.8, 43.0, 43.2}},
	{ID: "mailerlite", Name: "MailerLite", CategoryID: "email-marketing", VisibilityScore: 20.4, MentionCount: 37, Sparkline: []float64{17.9, 18.6, 19.2, 19.8, 20.1, 20.0, 20.4}},

	{ID: "asana", Name: "Asana", CategoryID: "project-management", VisibilityScore: 78.3, MentionCount: 312, Sparkline: []float64{74.5, 75.8, 76.4, 77.1, 77.9, 78.0, 78.3}},
	{ID: "notion", Name: "Notion", CategoryID: "project-management", VisibilityScore: 78.3, MentionCount: 305, Sparkline: []float64{73.9, 75.2, 76.0, 76.8, 77.4, 78.1, 78.3}},
	{ID: "trello", Name: "Trello", CategoryID: "project-management", VisibilityScore: 69.5, MentionCount: 251, Sparkline: []float64{66.1, 67.0, 67.8, 68.4, 69.0, 69.2, 69.5}},
	{ID: "monday", Name: "Monday.com", CategoryID: "project-management", VisibilityScore: 64.8, MentionCount: 214, Sparkline: []float64{60.9, 62.1, 62.9, 63.6, 64.2, 64.5, 64.8}},
	{ID: "clickup", Name: "ClickUp", CategoryID: "project-management", VisibilityScore: 52.7, MentionCount: 136, Sparkline: []float64{48.8, 50.1, 50.9, 51.6, 52.1, 52.4, 52.7}},
	{ID: "basecamp", Name: "Basecamp", CategoryID: "project-management", VisibilityScore: 38.9, MentionCount: 74, Sparkline: []float64{35.6, 36.8, 37.5, 38.0, 38.4, 38.7, 38.9}},

	{ID: "quickbooks", Name: "QuickBooks", CategoryID: "accounting", VisibilityScore: 81.6, MentionCount: 347, Sparkline: []float64{77.8, 79.0, 79.7, 80.4, 81.0, 81.2, 81.6}},
	{ID: "xero", Name: "Xero", CategoryID: "accounting", VisibilityScore: 59.2, MentionCount: 172, Sparkline: []float64{55.4, 56.7, 57.5, 58.1, 58.6, 58.9, 59.2}},
	{ID: "freshbooks", Name: "FreshBooks", CategoryID: "accounting", VisibilityScore: 44.8, MentionCount: 108, Sparkline: []float64{41.3, 42.5, 43.2, 43.9, 44.3, 44.6, 44.8}},
	{ID: "wave", Name: "Wave", CategoryID: "accounting", VisibilityScore: 27.3, MentionCount: 49, Sparkline: []float64{24.1, 25.3, 25.9, 26.5, 26.9, 27.1, 27.3}},

	{ID: "zoom", Name: "Zoom", CategoryID: "video-conferencing", VisibilityScore: 91.7, MentionCount: 438, Sparkline: []float64{88.2, 89.4, 90.0, 90.7, 91.2, 91.4, 91.7}},
	{ID: "google-meet", Name: "Google Meet", CategoryID: "video-conferencing", VisibilityScore: 76.9, MentionCount: 289, Sparkline: []float64{73.1, 74.3, 75.1, 75.8, 76.3, 76.6, 76.9}},
	{ID: "microsoft-teams", Name: "Microsoft Teams", CategoryID: "video-conferencing", VisibilityScore: 72.4, MentionCount: 263, Sparkline: []float64{68.7, 69.9, 70.6, 71.3, 71.8, 72.1, 72.4}},
	{ID: "webex", Name: "Webex", CategoryID: "video-conferencing", VisibilityScore: 47.1, MentionCount: 115, Sparkline: []float64{43.5, 44.8, 45.5, 46.2, 46.6, 46.9, 47.1}},
}
