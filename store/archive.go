package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/atakhatri/UNO-sub000/uno/game"
)

// GameRecord is one finished game, kept for history and stats.
type GameRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	GameID     string    `gorm:"uniqueIndex"`
	Winner     string
	WinnerName string
	Players    int
	StateJSON  string
	FinishedAt time.Time
	CreatedAt  time.Time
}

// Archive persists finished games to Postgres. Everything is nil-safe so a
// deployment without a DSN just skips archiving.
type Archive struct {
	db *gorm.DB
}

func OpenArchive(dsn string) (*Archive, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&GameRecord{}); err != nil {
		return nil, err
	}
	return &Archive{db: db}, nil
}

// Observe inspects a committed document and records it once it represents
// a finished game. Later commits on the same game (players leaving the
// roster) hit the unique index and are dropped.
func (a *Archive) Observe(doc Document) {
	if a == nil || a.db == nil {
		return
	}
	if status, _ := doc["status"].(string); status != string(game.StatusFinished) {
		return
	}
	async.Async(func() {
		if err := a.save(doc); err != nil {
			log.Error(err)
		}
	})
}

func (a *Archive) save(doc Document) error {
	s, err := DecodeState(doc)
	if err != nil {
		return err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	record := GameRecord{
		GameID:     s.ID,
		Winner:     s.Winner,
		Players:    len(s.Players),
		StateJSON:  string(data),
		FinishedAt: time.Now(),
	}
	for _, p := range s.Players {
		if p.UID == s.Winner {
			record.WinnerName = p.Name
		}
	}
	return a.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error
}
