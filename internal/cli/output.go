package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dom/league-improvement-tracker/internal/domain"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *domain.User:
		o.printUser(v)
	case *domain.GameSession:
		o.printSession(v)
	case []*domain.GameSession:
		for _, s := range v {
			o.printSession(s)
			fmt.Println()
		}
	case *domain.Goal:
		o.printGoal(v)
	case []*domain.Goal:
		for _, g := range v {
			o.printGoal(g)
		}
	case *domain.VideoTutorial:
		o.printVideo(v)
	case []*domain.VideoTutorial:
		for _, video := range v {
			o.printVideo(video)
			fmt.Println()
		}
	case *domain.Creator:
		o.printCreator(v)
	case []*domain.Creator:
		for _, c := range v {
			o.printCreator(c)
		}
	case *domain.ChampionPool:
		o.printPool(v)
	case []*domain.ChampionPool:
		for _, p := range v {
			o.printPool(p)
			fmt.Println()
		}
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printUser(u *domain.User) {
	fmt.Printf("User: %s (#%d)\n", u.Username, u.ID)
	fmt.Printf("Email: %s\n", u.Email)
	if u.IsAdmin {
		fmt.Println("Role: admin")
	}
}

func (o *Output) printSession(s *domain.GameSession) {
	fmt.Printf("Session #%d - %s\n", s.ID, s.Date.Format("2006-01-02"))
	fmt.Printf("Matchup: %s vs %s - %s\n", s.PlayerCharacter, s.EnemyCharacter, s.Result)
	fmt.Printf("Mood: %d/5\n", s.MoodRating)
	for _, p := range s.GoalProgress {
		fmt.Printf("  goal #%d %q: %d/5 %s\n", p.GoalID, p.Title, p.ProgressRating, p.Notes)
	}
	if s.Notes != "" {
		fmt.Printf("Notes: %s\n", s.Notes)
	}
}

func (o *Output) printGoal(g *domain.Goal) {
	fmt.Printf("[%s] #%d %s", g.Status, g.ID, g.Title)
	if g.Description != "" {
		fmt.Printf(" - %s", g.Description)
	}
	fmt.Println()
}

func (o *Output) printVideo(v *domain.VideoTutorial) {
	fmt.Printf("Video #%d: %s\n", v.ID, v.Title)
	fmt.Printf("Creator: %s\n", v.Creator)
	fmt.Printf("URL: %s\n", v.URL)
	if len(v.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(v.Tags, ", "))
	}
	if v.Category != nil {
		fmt.Printf("Category: %s\n", v.Category.Name)
	}
	if v.ProgressData != nil {
		watched := "unwatched"
		if v.ProgressData.IsWatched {
			watched = "watched"
		}
		fmt.Printf("Progress: %s (%.0f%%)\n", watched, v.ProgressData.WatchProgress*100)
	}
}

func (o *Output) printCreator(c *domain.Creator) {
	fmt.Printf("Creator #%d: %s", c.ID, c.Name)
	if c.Platform != "" {
		fmt.Printf(" [%s]", c.Platform)
	}
	fmt.Println()
}

func (o *Output) printPool(p *domain.ChampionPool) {
	fmt.Printf("Pool #%d: %s\n", p.ID, p.Name)
	if p.Description != "" {
		fmt.Printf("%s\n", p.Description)
	}
	for _, c := range p.Champions {
		fmt.Printf("  [%s] %s", c.Category, c.ChampionName)
		if c.Notes != "" {
			fmt.Printf(" - %s", c.Notes)
		}
		fmt.Println()
	}
}
