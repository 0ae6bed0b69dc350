package handlers

// Messages the bot sends. Kept in one place so tests can assert on them.
const (
	MsgHelpHint = "/help — a helping hand"

	MsgHelp = "Available commands:\n" +
		"/start — start a game\n" +
		"/finish — finish the game\n" +
		"/score — current player scores\n" +
		"/best_startup — a little easter egg\n" +
		"/help — go on, type it again\n"

	MsgEasterEgg = "P̶i̶e̶d̶ ̶P̶i̶p̶e̶r̶ — the best startup there ever was"

	MsgGameExists = "A game is already running\n" +
		"Type /finish to end it\n" +
		"Or call your system administrator"

	MsgGameCreated     = "Game created\nParticipants:"
	MsgGameNotFound    = "No game is running\n/start — begin one"
	MsgGameDeleted     = "Game over\n/start — play again"
	MsgPlayerNotMade   = "Player %d could not be registered"
	MsgScoreNotMade    = "Score for player %d could not be created"
	MsgChooseTheme     = "Choose a theme:\n"
	MsgThemeNotFound   = "Theme not found, copy a theme title from the list in this chat"
	MsgThemeChosen     = "Theme chosen:\n%s\nNow pick the game duration\n1\n2\n5\nminutes"
	MsgThemeNotExist   = "No such theme\n"
	MsgDurationHint    = "Can't do that — we only play 1, 2 or 5 minutes"
	MsgDurationChosen  = "Duration set: %d minutes\nHere comes your first question:"
	MsgNextQuestion    = "Here comes your next question:\n"
	MsgCorrectAnswer   = "%s got it right!"
	MsgWrongAnswer     = "%s got it wrong!\nCorrect answer: %s"
	MsgPlayerNotInGame = "Who said that? You are not part of this game"
	MsgTimeRemaining   = "Time remaining: %s\n\n"
	MsgInternalError   = "Something went wrong on our side, please try again"
)
