package store

import "github.com/footworks/footyscope/model"

// Action is a plain state-transition request. Reducers are the only code
// that interprets actions, and each slice reducer ignores actions it does
// not know.
type Action interface {
	isAction()
}

// auth slice

type authStarted struct{}

type authSucceeded struct {
	session model.Session
	// persist is false when the session was restored from storage at
	// startup, to avoid a redundant write-back.
	persist bool
}

type authFailed struct {
	msg string
}

type loggedOut struct{}

func (authStarted) isAction()   {}
func (authSucceeded) isAction() {}
func (authFailed) isAction()    {}
func (loggedOut) isAction()     {}

// catalog slice: the uniform pending/fulfilled/rejected lifecycle. gen ties
// a completion to the request that started it; completions from superseded
// requests are discarded.

type catalogPending struct {
	res Resource
	gen uint64
}

type catalogFulfilled struct {
	res     Resource
	gen     uint64
	payload any
}

type catalogRejected struct {
	res Resource
	gen uint64
	msg string
}

func (catalogPending) isAction()   {}
func (catalogFulfilled) isAction() {}
func (catalogRejected) isAction()  {}

// venues slice

type venuesPending struct {
	gen uint64
}

type venuesLoaded struct {
	gen   uint64
	items []model.Venue
}

func (venuesPending) isAction() {}
func (venuesLoaded) isAction()  {}

// news slice

type newsPending struct{}

type newsLoaded struct {
	articles []model.NewsArticle
}

func (newsPending) isAction() {}
func (newsLoaded) isAction()  {}

// favorites slice

type favoriteToggled struct {
	id string
}

type favoritesLoaded struct {
	ids []string
}

func (favoriteToggled) isAction() {}
func (favoritesLoaded) isAction() {}

// theme slice

type themeToggled struct{}

type themeSet struct {
	isDarkMode bool
}

func (themeToggled) isAction() {}
func (themeSet) isAction()     {}
