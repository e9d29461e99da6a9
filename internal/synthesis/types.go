package synthesis

import "github.com/abhisek/bilan/internal/profile"

// Exchange is one question/answer pair from the interview, in asking
// order.
type Exchange struct {
	Question string
	Answer   string
	Theme    string
	Phase    string
}

// Input holds everything the synthesis needs about the finished
// interview.
type Input struct {
	UserName      string
	PackageName   string
	CoachingStyle string
	Profile       *profile.Profile
	Exchanges     []Exchange
}
