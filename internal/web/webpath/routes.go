package webpath

const (
	Home = "/"

	Api              = "/api"
	ApiRatings       = Api + "/ratings"
	ApiRatingChanges = Api + "/ratings/changes"
	ApiMatches       = Api + "/matches"
	ApiPlayers       = Api + "/players"
	ApiPlayer        = ApiPlayers + "/:id"
	ApiPlayerBadges  = ApiPlayers + "/:id/badges"
	ApiRotation      = Api + "/rotation"
	ApiExport        = Api + "/export"
	ApiImport        = Api + "/import"
)
