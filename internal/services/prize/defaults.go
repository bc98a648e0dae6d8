package prize

import "github.com/KirkDiggler/fortune/internal/models"

// DefaultPrizes is the wheel a fresh install starts with
var DefaultPrizes = []models.Prize{
	{Text: "3-hour lunch break", Icon: "🍽️", Color: "#4A90D9", Position: 1},
	{Text: "Day off on your birthday", Icon: "🎂", Color: "#E8734A", Position: 2},
	{Text: "Finish work 2 hours early", Icon: "⏰", Color: "#F5C242", Position: 3},
	{Text: "Extra day off", Icon: "🌴", Color: "#D95B5B", Position: 4},
	{Text: "Start work 2 hours later", Icon: "😴", Color: "#5BBD8C", Position: 5},
	{Text: "Finish work at lunch (14:00)", Icon: "🏠", Color: "#9B6EC5", Position: 6},
}
