package analyzer

// Prose templates keyed by game type. Placeholders: {winner}, {loser},
// {winnerScore}, {loserScore}, {totalPoints}.
var roastTemplates = map[gameType][]string{
	gameBlowout: {
		"This wasn't a game, it was a public execution. {winner} absolutely demolished {loser} {winnerScore}-{loserScore}, leaving them questioning their life choices and their lineup decisions.",
		"{winner} showed no mercy in their {winnerScore}-{loserScore} beatdown of {loser}. It was like watching a professional boxer fight a toddler - technically legal, but morally questionable.",
		"In what can only be described as fantasy football war crimes, {winner} obliterated {loser} {winnerScore}-{loserScore}. The Geneva Convention should probably add a clause about this level of domination.",
	},
	gameClose: {
		"{winner} squeaked by {loser} in a nail-biter, {winnerScore}-{loserScore}. Both teams played like they were trying to lose, but {loser} was just slightly better at it.",
		"In a game that had all the excitement of watching paint dry, {winner} barely edged out {loser} {winnerScore}-{loserScore}. Neither team deserved to win, but someone had to.",
		"{winner} and {loser} engaged in what can generously be called 'football' with {winner} winning {winnerScore}-{loserScore}. It was closer than a family reunion and twice as uncomfortable to watch.",
	},
	gameAverage: {
		"{winner} handled {loser} with a solid {winnerScore}-{loserScore} victory. Nothing spectacular, nothing terrible - just good old-fashioned fantasy football mediocrity at its finest.",
		"In a game that will be forgotten by next Tuesday, {winner} beat {loser} {winnerScore}-{loserScore}. Both teams played exactly as expected, which is to say, disappointingly.",
		"{winner} defeated {loser} {winnerScore}-{loserScore} in what was either a masterclass in strategy or a beautiful disaster. We're still trying to figure out which.",
	},
	gameLowScoring: {
		"{winner} 'won' against {loser} {winnerScore}-{loserScore} in a game that made watching grass grow seem exciting. Both teams' offenses were apparently on vacation.",
		"In a battle of who could score fewer points, {winner} lost less badly than {loser}, winning {winnerScore}-{loserScore}. This game was brought to you by the letter 'L' for 'Loser'.",
		"{winner} and {loser} combined for {totalPoints} points, which is coincidentally the same number of people who enjoyed watching this trainwreck. {winner} won {winnerScore}-{loserScore}.",
	},
	gameHighScoring: {
		"{winner} and {loser} put on an absolute clinic, with {winner} winning {winnerScore}-{loserScore}. This game had more points than a geometry textbook and was twice as entertaining.",
		"In a game that would make video game developers jealous, {winner} outgunned {loser} {winnerScore}-{loserScore}. Both teams apparently forgot that defense was optional, not mandatory.",
		"{winner} survived a shootout against {loser}, winning {winnerScore}-{loserScore}. This game had more scoring than a teenage romance novel and was just as unrealistic.",
	},
}

var weeklyIntros = []string{
	"Another week, another collection of questionable decisions and shattered dreams.",
	"Welcome to this week's edition of 'How to Disappoint Your Friends and Influence Nobody.'",
	"This week in fantasy football: where hope goes to die and waiver wire pickups go to disappoint.",
	"Gather 'round for another thrilling installment of 'Why We Can't Have Nice Things: Fantasy Edition.'",
	"This week's games brought to you by overconfidence, poor judgment, and the eternal optimism of fantasy football managers.",
}
