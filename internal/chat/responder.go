package chat

import (
	"strings"
)

// Intent is one of the fixed keyword-triggered response categories.
type Intent string

const (
	IntentPricing  Intent = "pricing"
	IntentLocation Intent = "location"
	IntentBedrooms Intent = "bedrooms"
	IntentAgent    Intent = "agent"
	IntentThanks   Intent = "thanks"
	IntentGeneral  Intent = "general"
)

// Greeting is the assistant message seeded into every new chat session.
const Greeting = "Hello! I'm your AI real estate assistant. I can help you find properties, answer questions about listings, and provide market insights. How can I assist you today?"

// rule pairs an intent's trigger keywords with its canned response.
type rule struct {
	intent   Intent
	keywords []string
	response string
}

// Responder classifies free-text input into an intent by keyword containment
// and returns a canned response. Rules are evaluated in fixed priority order
// and the first match wins, so precedence is deterministic: a message
// containing both "price" and "thanks" resolves to the pricing intent.
type Responder struct {
	rules    []rule
	fallback string
}

// NewResponder creates a responder with the standard rule set.
func NewResponder() *Responder {
	return &Responder{
		rules: []rule{
			{
				intent:   IntentPricing,
				keywords: []string{"price", "cost"},
				response: "I can help you find properties within your budget. What's your preferred price range? For example, are you looking for properties under 5 Cr, between 5-10 Cr, or above 10 Cr?",
			},
			{
				intent:   IntentLocation,
				keywords: []string{"location", "area"},
				response: "Great! Location is key in real estate. Which areas are you interested in? We have excellent properties in DHA Lahore, Gulberg, Model Town, Bahria Town, and many other prime locations.",
			},
			{
				intent:   IntentBedrooms,
				keywords: []string{"bedroom", "bhk"},
				response: "How many bedrooms are you looking for? We have a variety of options from 1BHK apartments to spacious 5+ bedroom villas. I can show you properties that match your requirements.",
			},
			{
				intent:   IntentAgent,
				keywords: []string{"agent", "contact"},
				response: "I can connect you with our verified agents. They are experienced professionals who can provide detailed information and arrange property visits. Would you like me to share contact details of agents in your preferred area?",
			},
			{
				intent:   IntentThanks,
				keywords: []string{"thank", "thanks"},
				response: "You're welcome! I'm here to help you find your perfect home. Feel free to ask me anything about properties, locations, prices, or market trends.",
			},
		},
		fallback: "That's a great question! I can help you with property searches, price comparisons, location insights, and connecting with agents. Could you tell me more about what specific type of property you're looking for?",
	}
}

// Classify returns the intent of the first matching rule, or IntentGeneral
// when no keyword matches.
func (r *Responder) Classify(text string) Intent {
	lower := strings.ToLower(text)
	for _, rl := range r.rules {
		for _, kw := range rl.keywords {
			if strings.Contains(lower, kw) {
				return rl.intent
			}
		}
	}
	return IntentGeneral
}

// Respond returns the canned response for the input's intent.
func (r *Responder) Respond(text string) string {
	lower := strings.ToLower(text)
	for _, rl := range r.rules {
		for _, kw := range rl.keywords {
			if strings.Contains(lower, kw) {
				return rl.response
			}
		}
	}
	return r.fallback
}
