// Package insight derives personalization signals from a user's chat
// history: recurring concern tags, profile fragments, and tip suggestions.
// Everything here is pure computation over an in-memory history window.
package insight

// Lexicon is the flat set of health-domain terms used for pattern matching.
// Matching is case-insensitive substring containment, not word-tokenized: a
// term matches anywhere inside a message, including inside longer words.
// That permissiveness is intentional.
//
// Declaration order is the tie-break when terms recur equally often, so the
// order below is part of the contract. Category grouping is documentation
// only; at runtime this is one flat membership list.
var Lexicon = []string{
	// Physical health
	"headache", "migraine", "pain", "ache", "hurt", "sore", "fever", "cold", "flu",
	"cough", "sneeze", "nausea", "vomit", "dizzy", "tired", "fatigue", "weak",
	"stomach", "belly", "chest", "back", "neck", "shoulder", "knee", "joint",
	"muscle", "bone", "skin", "rash", "itch", "allergy", "asthma", "breathing",

	// Mental health
	"stress", "anxiety", "depression", "sad", "worried", "panic", "mood",
	"mental", "emotional", "overwhelmed", "burnout", "lonely", "angry",

	// Lifestyle and wellness
	"sleep", "insomnia", "energy", "diet", "nutrition", "food",
	"exercise", "fitness", "weight", "eating", "appetite", "hydration",
	"water", "vitamin", "supplement", "healthy", "wellness", "lifestyle",

	// Student-specific health concerns
	"study", "exam", "academic", "concentration", "focus", "memory",
	"procrastination", "deadline", "pressure", "university", "college",
	"student", "campus", "dorm", "roommate", "social", "relationship",

	// Medical terms
	"doctor", "physician", "clinic", "hospital", "medicine", "medication",
	"prescription", "treatment", "therapy", "counseling", "health", "medical",
	"symptom", "diagnosis", "condition", "disease", "illness", "sick",

	// Body systems
	"heart", "blood", "circulation", "digestive", "immune",
	"nervous", "respiratory", "reproductive", "endocrine", "hormonal",
}
