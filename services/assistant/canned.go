package assistant

import "strings"

type cannedRule struct {
	keywords []string
	answer   string
}

// Keyword-matched planning answers, checked in order. First match wins.
var cannedRules = []cannedRule{
	{
		keywords: []string{"budget", "cost", "price"},
		answer: "Budgeting is key! A typical Indian wedding budget breakdown: 40-50% for Venue & Catering, " +
			"15% for Jewelry, 10% for Decor, 10% for Photography, and the rest for Attire, Makeup, and " +
			"Entertainment. I can help you find vendors within your specific range if you tell me your city!",
	},
	{
		keywords: []string{"venue", "location", "destination"},
		answer: "Choosing a venue sets the tone! For a royal feel, look for palaces in Rajasthan. For a beach " +
			"vibe, Goa or Kerala are perfect. For city weddings, banquet halls and 5-star hotels offer great " +
			"convenience. Have you checked the 'Venues' category to see top-rated options near you?",
	},
	{
		keywords: []string{"theme", "idea", "trend"},
		answer: "Trending themes include 'Sustainable Chic' (eco-friendly decor), 'Royal Vintage' (velvet & " +
			"gold), and 'Tropical Paradise' (bright florals). Pastel themes are also timeless for daytime " +
			"weddings. What kind of vibe are you looking for?",
	},
	{
		keywords: []string{"flower", "floral", "decor"},
		answer: "Flowers bring life to any wedding! Marigolds (Genda) are classic for Haldi/Mehndi. For " +
			"receptions, pastel roses, orchids, and hydrangeas are trending. Pro tip: Use seasonal local " +
			"flowers to save costs without compromising on beauty!",
	},
	{
		keywords: []string{"food", "menu", "catering", "cuisine", "dish"},
		answer: "Food is the heart of an Indian wedding! Popular trends include live chaat and pasta counters, " +
			"fusion menus, and regional specialties like authentic Rajasthani or South Indian spreads. Don't " +
			"forget a grand dessert station with Jalebi-Rabdi or exotic pastries!",
	},
	{
		keywords: []string{"photo", "video", "shoot"},
		answer: "For photography, 'Candid' and 'Cinematic' styles are most popular. Make sure to book your " +
			"photographer at least 6 months in advance. Pre-wedding shoots at scenic locations are a great " +
			"way to get comfortable with the camera before the big day!",
	},
	{
		keywords: []string{"makeup", "hair", "look", "beauty"},
		answer: "For makeup, the 'No-Makeup' makeup look and 'Dewy Glass Skin' are huge trends. Traditional " +
			"red lips and bold eyes remain a classic for the main wedding day. Always book a trial session " +
			"with your makeup artist to ensure you're happy with the look!",
	},
	{
		keywords: []string{"dress", "lehenga", "saree", "sherwani"},
		answer: "Pastel lehengas are still going strong, but deep jewel tones (emerald green, wine red) are " +
			"making a comeback. For grooms, floral safas and asymmetrical sherwanis are trendy. Comfort is " +
			"just as important as style for long ceremonies!",
	},
	{
		keywords: []string{"music", "dj", "song", "dance"},
		answer: "Entertainment makes the party! A mix of Bollywood chartbusters and classic wedding songs " +
			"works best. Live bands or Sufi nights are great for Sangeet. Don't forget to prepare a fun " +
			"bride/groom entry song!",
	},
	{
		keywords: []string{"invite", "card", "invitation"},
		answer: "Digital invitations (e-invites) are eco-friendly and easy to share on WhatsApp. For physical " +
			"cards, boxed invitations with sweets or dry fruits add a premium touch. Video invites are also " +
			"very popular now!",
	},
	{
		keywords: []string{"jewelry", "jewellery", "gold"},
		answer: "Polki and Kundan sets are timeless for the wedding day. For pre-wedding functions, floral " +
			"jewelry or lightweight diamond/platinum pieces are trendy. Layering necklaces is a great way " +
			"to add grandeur!",
	},
}

const cannedFallback = "That's a great question! While I'm still learning, I suggest browsing the vendor " +
	"listings to connect with experts who can make that happen. Is there anything specific about decor, " +
	"food, venues, or planning you'd like to know?"

func cannedAnswer(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range cannedRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.answer
			}
		}
	}
	return cannedFallback
}
