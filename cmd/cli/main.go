// Command cli is a terminal client for the dashboard API. It keeps a local
// session cache (token + profile) the same way the web client keeps
// localStorage, and gates the protected views through it.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"creatorboard-backend/pkg/apiclient"
	"creatorboard-backend/pkg/session"
	"creatorboard-backend/pkg/youtube"

	"golang.org/x/term"
)

const defaultServer = "http://localhost:8080"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	server := os.Getenv("CREATORBOARD_SERVER")
	if server == "" {
		server = defaultServer
	}

	cache := session.NewCache(sessionPath())
	client := apiclient.New(server)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "signup":
		err = runSignup(ctx, client, cache)
	case "login":
		err = runLogin(ctx, client, cache)
	case "logout":
		err = cache.Logout()
		if err == nil {
			fmt.Println("Logged out")
		}
	case "whoami":
		err = runWhoami(ctx, client, cache)
	case "stats":
		err = runStats(ctx, client, os.Args[2:])
	case "schedule-view":
		err = runScheduleView(ctx, client, cache)
	case "open":
		err = runOpen(cache, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: cli <command>

commands:
  signup            create an account and start a session
  login             sign in and start a session
  logout            clear the local session
  whoami            show the profile for the current session
  stats <url|id>    show view/like/comment counts for a video
  schedule-view     list the scheduled videos for the current session
  open <route>      check access to a view (dashboard, analytics, ...)`)
}

func sessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".creatorboard-session.json"
	}
	return filepath.Join(home, ".creatorboard-session.json")
}

func prompt(label string) (string, error) {
	fmt.Printf("%s: ", label)
	var value string
	if _, err := fmt.Scanln(&value); err != nil {
		return "", fmt.Errorf("reading %s: %w", label, err)
	}
	return value, nil
}

func promptPassword(label string) (string, error) {
	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", label, err)
	}
	return string(raw), nil
}

func runSignup(ctx context.Context, client *apiclient.Client, cache *session.Cache) error {
	username, err := prompt("username")
	if err != nil {
		return err
	}
	email, err := prompt("email")
	if err != nil {
		return err
	}
	password, err := promptPassword("password")
	if err != nil {
		return err
	}

	result, err := client.Signup(ctx, username, email, password)
	if err != nil {
		return err
	}
	if err := cache.Save(result.Token, result.User); err != nil {
		return err
	}
	fmt.Printf("Account created. Signed in as %s\n", result.User.Username)
	return nil
}

func runLogin(ctx context.Context, client *apiclient.Client, cache *session.Cache) error {
	email, err := prompt("email")
	if err != nil {
		return err
	}
	password, err := promptPassword("password")
	if err != nil {
		return err
	}

	result, err := client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := cache.Save(result.Token, result.User); err != nil {
		return err
	}
	fmt.Printf("Signed in as %s\n", result.User.Username)
	return nil
}

func runWhoami(ctx context.Context, client *apiclient.Client, cache *session.Cache) error {
	entry, err := cache.Load()
	if err != nil {
		return err
	}
	if entry == nil || entry.Token == "" {
		return fmt.Errorf("not logged in")
	}
	if cache.Stale() {
		fmt.Fprintln(os.Stderr, "warning: cached session may have expired")
	}

	profile, err := client.Profile(ctx, entry.Token)
	if err != nil {
		return err
	}
	fmt.Printf("id:       %s\nusername: %s\nemail:    %s\n", profile.ID, profile.Username, profile.Email)
	return nil
}

func runStats(ctx context.Context, client *apiclient.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: cli stats <url|id>")
	}

	videoID := args[0]
	if id, err := youtube.ParseVideoID(videoID); err == nil {
		videoID = id
	}

	stats, err := client.VideoStats(ctx, videoID)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n  views:    %d\n  likes:    %d\n  comments: %d\n",
		stats.Title, stats.Statistics.ViewCount, stats.Statistics.LikeCount, stats.Statistics.CommentCount)
	return nil
}

func runScheduleView(ctx context.Context, client *apiclient.Client, cache *session.Cache) error {
	entry, err := cache.Load()
	if err != nil {
		return err
	}
	if entry == nil || entry.Token == "" {
		return fmt.Errorf("not logged in")
	}
	if cache.Stale() {
		fmt.Fprintln(os.Stderr, "warning: cached session may have expired")
	}

	videos, err := client.Schedule(ctx, entry.Token)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		fmt.Println("No scheduled videos")
		return nil
	}
	for _, v := range videos {
		fmt.Printf("%s  %s at %s  [%s]  %s\n", v.Title, v.Date, v.Time, v.Category, v.Status)
	}
	return nil
}

func runOpen(cache *session.Cache, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: cli open <route>")
	}

	route := args[0]
	if !cache.RequireAuth(route) {
		fmt.Println("Please login to access this page")
		return nil
	}
	fmt.Printf("Access to %q granted\n", route)
	return nil
}
