package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/config"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/database"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/dto"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/repository"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/services"
)

func main() {
	dumpFlag := flag.String("dump", "", "dump an entity table (or 'all') as JSON")
	recordFlag := flag.String("record", "", "record a match from a scorecard JSON file")
	flag.Parse()

	// Load configuration
	cfg := config.Load()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	db := database.GetDB()
	clubRepo := repository.NewClubRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	reportRepo := repository.NewReportRepository(db)
	queryService := services.NewQueryService(clubRepo, matchRepo, reportRepo)
	matchService := services.NewMatchService(matchRepo, clubRepo)

	switch {
	case *recordFlag != "":
		if err := recordScorecard(matchService, *recordFlag); err != nil {
			log.Fatalf("Failed to record match: %v", err)
		}
	case *dumpFlag != "":
		if err := dumpTables(queryService, *dumpFlag); err != nil {
			log.Fatalf("Failed to dump tables: %v", err)
		}
	default:
		flag.Usage()
	}
}

// recordScorecard parses a scorecard file through the strict parser and
// records it atomically.
func recordScorecard(matchService *services.MatchService, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read scorecard: %w", err)
	}

	card, err := dto.ParseScorecard(data)
	if err != nil {
		return err
	}

	match, err := matchService.RecordMatch(services.RecordMatchInput{
		SeasonID:    card.SeasonID,
		Date:        card.Date,
		Opponent:    card.Opponent,
		Venue:       card.Venue,
		WinningTeam: card.WinningTeam,
		TeamScores:  card.TeamScores,
		Batting:     card.BattingEntries(),
		Bowling:     card.BowlingEntries(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Recorded match %d against %s\n", match.ID, match.Opponent)
	return nil
}

// dumpTables prints one entity table, or all of them, as JSON lines.
func dumpTables(queryService *services.QueryService, target string) error {
	entities := []services.Entity{services.Entity(target)}
	if target == "all" {
		entities = services.Entities()
	}

	for _, entity := range entities {
		rows, err := queryService.Dump(entity)
		if err != nil {
			return err
		}

		fmt.Printf("Contents of %s:\n", entity)
		for _, row := range rows {
			line, err := json.Marshal(row)
			if err != nil {
				return fmt.Errorf("failed to encode row: %w", err)
			}
			fmt.Println(string(line))
		}
	}

	return nil
}
