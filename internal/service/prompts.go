package service

import "github.com/limbo/journowl/pkg/entity"

var generalPrompts = []string{
	"What is one small thing that made today different from yesterday?",
	"Describe the view from the place you spent most of today.",
	"Write a letter to yourself one year from now.",
	"Which conversation from this week keeps replaying in your head, and why?",
	"List three things you would like to remember about this season of your life.",
	"What did you learn today that you did not know this morning?",
	"Describe a sound, a smell and a texture from today.",
	"What is a question you have been avoiding? Try answering it here.",
}

var moodPrompts = map[entity.Mood][]string{
	entity.MoodHappy: {
		"What made you smile today? Capture it in as much detail as you can.",
		"Who would you like to share today's good mood with, and what would you tell them?",
	},
	entity.MoodSad: {
		"Write down what feels heavy right now, without judging it.",
		"What would you say to a friend who felt the way you feel today?",
	},
	entity.MoodAngry: {
		"What crossed a line today? Describe it, then describe what you need.",
		"Write the message you will not send. Then decide what to do with the feeling.",
	},
	entity.MoodAnxious: {
		"List what is worrying you, then mark what is in your control.",
		"Describe the worst case, the best case and the most likely case.",
	},
	entity.MoodCalm: {
		"Where do you feel calm in your body right now? Describe it.",
		"What helped you arrive at this calm, and how can you return to it?",
	},
	entity.MoodExcited: {
		"What are you looking forward to? Describe the moment you imagine.",
		"Write down the idea that is buzzing in your head before it fades.",
	},
	entity.MoodTired: {
		"What drained your energy today, and what gave some back?",
		"Write three sentences about today, then let yourself rest.",
	},
	entity.MoodGrateful: {
		"Name three people you are grateful for and one thing each of them did.",
		"What ordinary thing would you miss most if it disappeared tomorrow?",
	},
}

func promptsFor(mood entity.Mood) []string {
	if pool, ok := moodPrompts[mood]; ok {
		return pool
	}
	return generalPrompts
}
