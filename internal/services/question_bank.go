package services

import "brainhealth/internal/models"

// Банк вопросов и ключ ответов — неизменяемые данные, собираются один раз
// при старте процесса. Ключ наружу не отдаётся никогда.
var questionBank = []models.CognitiveTestQuestion{
	{ID: 1, Question: "What is 5 + 7?", Options: []string{"10", "11", "12", "13"}},
	{ID: 2, Question: "What month comes after June?", Options: []string{"May", "July", "August", "September"}},
	{ID: 3, Question: "Which word does not belong: apple, banana, carrot, grape?", Options: []string{"Apple", "Banana", "Carrot", "Grape"}},
	{ID: 4, Question: "What day comes two days after Friday?", Options: []string{"Saturday", "Sunday", "Monday", "Tuesday"}},
	{ID: 5, Question: "How many minutes are in one and a half hours?", Options: []string{"60", "80", "90", "100"}},
	{ID: 6, Question: "Which number comes next: 2, 4, 8, 16, ...?", Options: []string{"24", "30", "32", "64"}},
	{ID: 7, Question: "What is the opposite of 'generous'?", Options: []string{"Kind", "Stingy", "Friendly", "Honest"}},
	{ID: 8, Question: "If you take 3 pills, one every half hour, how long until all are taken?", Options: []string{"30 minutes", "1 hour", "1.5 hours", "2 hours"}},
	{ID: 9, Question: "Which season comes before autumn?", Options: []string{"Winter", "Spring", "Summer", "None"}},
	{ID: 10, Question: "How many days are in a leap-year February?", Options: []string{"28", "29", "30", "31"}},
}

var answerKey = map[int]string{
	1:  "12",
	2:  "July",
	3:  "Carrot",
	4:  "Sunday",
	5:  "90",
	6:  "32",
	7:  "Stingy",
	8:  "1 hour",
	9:  "Summer",
	10: "29",
}
