package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dom/league-improvement-tracker/internal/client"
	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/state"
)

const serverURL = "http://localhost:8000"

func main() {
	ctx := context.Background()

	c := client.New(serverURL, client.NewMemoryCredentials(""))
	store := state.NewStore(c)

	username := fmt.Sprintf("demo_%d", time.Now().Unix())
	password := "demopassword123"

	if err := store.Register(ctx, state.RegisterInput{
		Email:    username + "@demo.local",
		Username: username,
		Password: password,
	}); err != nil {
		fatal("register failed: %v", err)
	}
	fmt.Printf("Registered and logged in as %s / %s\n", username, password)

	goals := []state.GoalInput{
		{Title: "Hit 8 CS/min", Description: "Focus on wave catching between objectives"},
		{Title: "Ward river before 3:00", Description: "Pre-empt early ganks"},
		{Title: "Review one VOD per week"},
	}
	for _, g := range goals {
		if _, err := store.CreateGoal(ctx, g); err != nil {
			fatal("create goal %q: %v", g.Title, err)
		}
	}
	fmt.Printf("Created %d goals\n", len(goals))

	snapshot := store.Snapshot()
	firstGoal := snapshot.Goals.Items[0]

	sessions := []state.GameSessionInput{
		{PlayerCharacter: "Jax", EnemyCharacter: "Darius", Result: "win", MoodRating: 4,
			GoalProgress: []domain.GoalProgressEntry{
				{GoalID: firstGoal.ID, Title: firstGoal.Title, ProgressRating: 4, Notes: "7.8 CS/min"},
			}},
		{PlayerCharacter: "Fiora", EnemyCharacter: "Malphite", Result: "loss", MoodRating: 2,
			Notes: "Tilted after first blood, shadow game next time"},
		{PlayerCharacter: "Jax", EnemyCharacter: "Teemo", Result: "win", MoodRating: 5},
	}
	for _, s := range sessions {
		if _, err := store.CreateGameSession(ctx, s); err != nil {
			fatal("create session vs %s: %v", s.EnemyCharacter, err)
		}
	}
	fmt.Printf("Logged %d game sessions\n", len(sessions))

	if _, err := store.CreateCreator(ctx, state.CreatorInput{
		Name:     "Coach Curtis",
		Platform: "youtube",
		Website:  "https://youtube.com/@coachcurtis",
	}); err != nil {
		fatal("create creator: %v", err)
	}

	if _, err := store.CreateChampionPool(ctx, state.ChampionPoolInput{
		Name:        "Top lane mains",
		Description: "Blind picks plus Teemo tech",
		Champions: []state.ChampionEntryInput{
			{ChampionID: "jax", ChampionName: "Jax", Category: "blind"},
			{ChampionID: "fiora", ChampionName: "Fiora", Category: "counter"},
		},
	}); err != nil {
		fatal("create champion pool: %v", err)
	}
	fmt.Println("Created demo creator and champion pool")

	fmt.Println("\nDone. Try:")
	fmt.Printf("  tracker auth login %s -p %s\n", username, password)
	fmt.Println("  tracker goal list")
	fmt.Println("  tracker session list")
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
