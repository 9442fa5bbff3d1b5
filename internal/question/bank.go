package question

import "github.com/example/lingodrill/internal/models"

// Bank returns the built-in question set used whenever the generation
// service is unavailable or under-produces. It covers a small everyday
// vocabulary and is large enough to fill a whole default session on its own.
func Bank() []models.Question {
	return []models.Question{
		{
			Type:        models.QuestionTypeMultipleChoice,
			Question:    `Which word means "feeling or showing pleasure"?`,
			Hint:        "A common adjective",
			Options:     []string{"sad", "happy", "angry", "tired"},
			Answer:      "happy",
			Explanation: `"Happy" means feeling or showing pleasure or contentment.`,
			Word:        "happy",
			Difficulty:  3,
		},
		{
			Type:        models.QuestionTypeMultipleChoice,
			Question:    `Which word means "pleasing to look at"?`,
			Hint:        "Used to describe attractive things",
			Options:     []string{"ugly", "beautiful", "ordinary", "strange"},
			Answer:      "beautiful",
			Explanation: `"Beautiful" describes something pleasing to the senses, especially to sight.`,
			Word:        "beautiful",
			Difficulty:  4,
		},
		{
			Type:        models.QuestionTypeFillBlank,
			Question:    "Complete the sentence: I am very _____ today.",
			Hint:        "A word for feeling good",
			Answer:      "happy",
			Explanation: `The sentence means the speaker is in a good mood today.`,
			Word:        "happy",
			Difficulty:  3,
		},
		{
			Type:        models.QuestionTypeMultipleChoice,
			Question:    `Which word means "to move quickly on foot"?`,
			Hint:        "An action verb",
			Options:     []string{"walk", "run", "jump", "fly"},
			Answer:      "run",
			Explanation: `"Run" means to move at a speed faster than a walk.`,
			Word:        "run",
			Difficulty:  2,
		},
		{
			Type:        models.QuestionTypeFillBlank,
			Question:    "Complete the sentence: She likes to _____ in the park.",
			Hint:        "Moving fast on foot",
			Answer:      "run",
			Explanation: `The sentence means she enjoys running in the park.`,
			Word:        "run",
			Difficulty:  2,
		},
		{
			Type:        models.QuestionTypeMultipleChoice,
			Question:    `Which word names "printed pages bound together for reading"?`,
			Hint:        "A common noun",
			Options:     []string{"book", "pen", "table", "chair"},
			Answer:      "book",
			Explanation: `A "book" is a set of written or printed pages bound together.`,
			Word:        "book",
			Difficulty:  1,
		},
		{
			Type:        models.QuestionTypeFillBlank,
			Question:    "Complete the sentence: This is a good _____.",
			Hint:        "Something you read",
			Answer:      "book",
			Explanation: `The sentence praises something readable, a book.`,
			Word:        "book",
			Difficulty:  1,
		},
		{
			Type:        models.QuestionTypeMultipleChoice,
			Question:    `Which word means "to put food in your mouth and swallow it"?`,
			Hint:        "A daily action",
			Options:     []string{"drink", "eat", "sleep", "play"},
			Answer:      "eat",
			Explanation: `"Eat" means to take in food.`,
			Word:        "eat",
			Difficulty:  1,
		},
		{
			Type:        models.QuestionTypeFillBlank,
			Question:    "Complete the sentence: Let's _____ dinner together.",
			Hint:        "What you do with food",
			Answer:      "eat",
			Explanation: `The sentence is an invitation to share a meal.`,
			Word:        "eat",
			Difficulty:  1,
		},
		{
			Type:        models.QuestionTypeMultipleChoice,
			Question:    `Which word means "to rest with your eyes closed at night"?`,
			Hint:        "Everyone does it daily",
			Options:     []string{"work", "sleep", "exercise", "study"},
			Answer:      "sleep",
			Explanation: `"Sleep" is the natural resting state of the body and mind.`,
			Word:        "sleep",
			Difficulty:  1,
		},
		{
			Type:        models.QuestionTypeFillBlank,
			Question:    "Complete the sentence: I need to _____ now.",
			Hint:        "What you do at bedtime",
			Answer:      "sleep",
			Explanation: `The speaker needs to go to bed.`,
			Word:        "sleep",
			Difficulty:  1,
		},
		{
			Type:        models.QuestionTypeMultipleChoice,
			Question:    `Which word means "to mark letters or words on a surface"?`,
			Hint:        "Done with a pen",
			Options:     []string{"read", "write", "watch", "listen"},
			Answer:      "write",
			Explanation: `"Write" means to form letters or words, typically with a pen or keyboard.`,
			Word:        "write",
			Difficulty:  2,
		},
		{
			Type:        models.QuestionTypeFillBlank,
			Question:    "Complete the sentence: Please _____ your name here.",
			Hint:        "Done with a pen",
			Answer:      "write",
			Explanation: `The sentence asks someone to put their name down in writing.`,
			Word:        "write",
			Difficulty:  2,
		},
		{
			Type:        models.QuestionTypeMultipleChoice,
			Question:    `Which word means "to say words aloud"?`,
			Hint:        "Done with your voice",
			Options:     []string{"hear", "speak", "read", "write"},
			Answer:      "speak",
			Explanation: `"Speak" means to talk, to produce words with the voice.`,
			Word:        "speak",
			Difficulty:  2,
		},
		{
			Type:        models.QuestionTypeFillBlank,
			Question:    "Complete the sentence: Can you _____ English?",
			Hint:        "Using your voice in a language",
			Answer:      "speak",
			Explanation: `The question asks whether someone can talk in English.`,
			Word:        "speak",
			Difficulty:  2,
		},
	}
}

// PlaceholderReview builds the deterministic fallback review question used
// when generation fails for a due word, so review coverage is never dropped.
func PlaceholderReview(word string) models.Question {
	correct := word + " (correct)"
	return models.Question{
		Type:        models.QuestionTypeMultipleChoice,
		Question:    "Review this word: " + word,
		Hint:        "This is a review question",
		Options:     []string{correct, "option B", "option C", "option D"},
		Answer:      correct,
		Explanation: "Review of the word: " + word,
		Word:        word,
		Difficulty:  3,
	}
}
