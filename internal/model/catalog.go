package model

// Game is a catalog entry for a game on the platform.
type Game struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Category    string  `json:"category" db:"category"`
	Difficulty  string  `json:"difficulty" db:"difficulty"`
	Status      string  `json:"status" db:"status"`
	Version     string  `json:"version" db:"version"`
	PlayCount   int     `json:"play_count" db:"play_count"`
	Rating      float64 `json:"rating" db:"rating"`
	CreatedAt   string  `json:"created_at" db:"created_at"`
	UpdatedAt   string  `json:"updated_at" db:"updated_at"`
}

// Build is a build record for a specific game version.
type Build struct {
	ID        string  `json:"id" db:"id"`
	GameID    string  `json:"game_id" db:"game_id"`
	GameName  string  `json:"game_name" db:"game_name"`
	Version   string  `json:"version" db:"version"`
	Status    string  `json:"status" db:"status"`
	BuildDate string  `json:"build_date" db:"build_date"`
	Notes     *string `json:"notes,omitempty" db:"notes"`
}

// ReleaseNote is a platform update announcement (feature, bugfix, or
// security), serialized as "update" records on the wire.
type ReleaseNote struct {
	ID          string  `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Description string  `json:"description" db:"description"`
	Version     string  `json:"version" db:"version"`
	Type        string  `json:"type" db:"type"`
	Status      string  `json:"status" db:"status"`
	ReleaseDate *string `json:"release_date,omitempty" db:"release_date"`
	CreatedAt   string  `json:"created_at" db:"created_at"`
}

// Revenue is a single ledger entry: subscription, purchase, or donation.
type Revenue struct {
	ID          string  `json:"id" db:"id"`
	Date        string  `json:"date" db:"date"`
	Amount      float64 `json:"amount" db:"amount"`
	Source      string  `json:"source" db:"source"`
	Description string  `json:"description" db:"description"`
	Type        string  `json:"type" db:"type"`
}
