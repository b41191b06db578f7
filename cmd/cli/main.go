package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cuashub/internal/wizard"
	"cuashub/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

type tokenData struct {
	Token string `json:"token"`
}

type authResponse struct {
	Token string `json:"token"`
}

type productListResponse struct {
	Total int              `json:"total"`
	Items []models.Product `json:"items"`
}

func main() {
	global := flag.NewFlagSet("cuashub", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	tokenPath := global.String("token", defaultTokenPath(), "token file path")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	cmd := args[0]
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	client := &http.Client{Timeout: 60 * time.Second}

	switch cmd {
	case "auth":
		handleAuth(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "products":
		handleProducts(ctx, client, *baseURL, sub, args[2:])
	case "review":
		handleReview(ctx, client, *baseURL, *tokenPath, args[1:])
	case "stats":
		handleStats(ctx, client, *baseURL, *tokenPath)
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`usage: cuashub [-api URL] [-token PATH] <command>

commands:
  auth register|login|logout   manage the session
  products list|get <id>       browse the catalog
  review [product-id]          submit a review (interactive wizard)
  stats                        admin dashboard numbers`)
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, ".cuashub", "token.json")
}

func loadToken(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var td tokenData
	if err := json.Unmarshal(b, &td); err != nil {
		return ""
	}
	return td.Token
}

func saveToken(path, token string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.Marshal(tokenData{Token: token})
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

func doJSON(ctx context.Context, client *http.Client, method, url, token string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", resp.Status, apiErr.Error)
		}
		return fmt.Errorf("%s", resp.Status)
	}
	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

func handleAuth(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	switch sub {
	case "register", "login":
		fs := flag.NewFlagSet("auth "+sub, flag.ExitOnError)
		email := fs.String("email", "", ".mil email address")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)
		if *email == "" || *password == "" {
			log.Fatalf("auth %s requires -email and -password", sub)
		}

		var resp authResponse
		err := doJSON(ctx, client, http.MethodPost, baseURL+"/auth/"+sub, "",
			map[string]string{"email": *email, "password": *password}, &resp)
		if err != nil {
			log.Fatalf("auth %s: %v", sub, err)
		}
		if err := saveToken(tokenPath, resp.Token); err != nil {
			log.Fatalf("save token: %v", err)
		}
		fmt.Println("ok")
	case "logout":
		token := loadToken(tokenPath)
		if token == "" {
			log.Fatal("not logged in")
		}
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/auth/logout", token, nil, nil); err != nil {
			log.Fatalf("logout: %v", err)
		}
		_ = os.Remove(tokenPath)
		fmt.Println("ok")
	default:
		printUsage()
		os.Exit(1)
	}
}

func fetchProducts(ctx context.Context, client *http.Client, baseURL string) ([]models.Product, error) {
	var resp productListResponse
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/products", "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func handleProducts(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "list", "":
		items, err := fetchProducts(ctx, client, baseURL)
		if err != nil {
			log.Fatalf("products list: %v", err)
		}
		for _, p := range items {
			fmt.Printf("%3d  %-24s %-28s %s\n", p.ID, p.Name, p.Manufacturer, p.Price)
		}
	case "get":
		if len(args) == 0 {
			log.Fatal("products get requires an id")
		}
		var p models.Product
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/products/"+args[0], "", nil, &p); err != nil {
			log.Fatalf("products get: %v", err)
		}
		b, _ := json.MarshalIndent(p, "", "  ")
		fmt.Println(string(b))
	default:
		printUsage()
		os.Exit(1)
	}
}

// handleReview walks the three-step wizard on the terminal and submits the
// assembled review through the API.
func handleReview(ctx context.Context, client *http.Client, baseURL, tokenPath string, args []string) {
	token := loadToken(tokenPath)
	if token == "" {
		log.Fatal("log in first: cuashub auth login -email ... -password ...")
	}

	products, err := fetchProducts(ctx, client, baseURL)
	if err != nil {
		log.Fatalf("load products: %v", err)
	}

	in := bufio.NewScanner(os.Stdin)

	var w *wizard.Wizard
	var productID int64

	submit := func(sub wizard.Submission) error {
		return postSubmission(ctx, client, baseURL, token, productID, sub)
	}

	if len(args) > 0 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatalf("invalid product id %q", args[0])
		}
		var name string
		for _, p := range products {
			if p.ID == id {
				name = p.Name
			}
		}
		if name == "" {
			log.Fatalf("unknown product id %d", id)
		}
		productID = id
		w = wizard.NewForProduct(products, name, submit)
	} else {
		w = wizard.New(products, submit)
	}

	// intro step: pick the system
	for w.Step() == wizard.StepIntro {
		if w.SystemName == "" {
			fmt.Println("Which system are you reviewing?")
			for _, p := range w.FilteredProducts() {
				fmt.Printf("  %3d  %s (%s)\n", p.ID, p.Name, p.Manufacturer)
			}
			fmt.Print("product id> ")
			if !in.Scan() {
				return
			}
			id, err := strconv.ParseInt(strings.TrimSpace(in.Text()), 10, 64)
			if err != nil {
				fmt.Println("enter a product id from the list")
				continue
			}
			found := false
			for _, p := range products {
				if p.ID == id {
					w.SelectProduct(p)
					productID = p.ID
					found = true
				}
			}
			if !found {
				fmt.Println("unknown product id")
				continue
			}
		}
		if err := w.Start(); err != nil {
			fmt.Println("select a system first")
			w.SystemName = ""
		}
	}

	fmt.Printf("\nReviewing: %s\n", w.SystemName)
	fmt.Println("Rate each category 1-5, or enter 'na' if not applicable.")

	for _, cat := range w.Categories() {
		fmt.Printf("\n%s\n  %s\n", cat.Title, cat.Description)
		for {
			fmt.Print("rating (1-5 or na)> ")
			if !in.Scan() {
				return
			}
			answer := strings.ToLower(strings.TrimSpace(in.Text()))
			if answer == "na" {
				w.ToggleNotApplicable(cat.ID)
				break
			}
			rating, err := strconv.Atoi(answer)
			if err != nil || rating < 1 || rating > 5 {
				fmt.Println("enter 1-5 or na")
				continue
			}
			w.SetRating(cat.ID, rating)
			break
		}
		fmt.Print("comment (optional)> ")
		if !in.Scan() {
			return
		}
		w.SetComment(cat.ID, strings.TrimSpace(in.Text()))
	}

	fmt.Print("\nYour counter-UAS experience level> ")
	if !in.Scan() {
		return
	}
	w.CUASExperience = strings.TrimSpace(in.Text())

	fmt.Print("Other systems you have used (optional)> ")
	if !in.Scan() {
		return
	}
	w.PreviousSystems = strings.TrimSpace(in.Text())

	fmt.Print("Additional feedback (optional)> ")
	if !in.Scan() {
		return
	}
	w.AdditionalFeedback = strings.TrimSpace(in.Text())

	if _, err := w.Submit(); err != nil {
		log.Fatalf("submit: %v", err)
	}
	fmt.Println("\nThank you for your review! It has been submitted successfully.")
}

// postSubmission maps the wizard payload onto the review API. Category order
// is fixed, so slots map positionally onto the five rating fields.
func postSubmission(ctx context.Context, client *http.Client, baseURL, token string, productID int64, sub wizard.Submission) error {
	if productID == 0 {
		return fmt.Errorf("no product selected")
	}

	var ratings models.CategoryRatings
	var comments models.CategoryComments
	for i, cat := range sub.Categories {
		switch i {
		case 0:
			ratings.Transportability = cat.Rating
			comments.Transportability = cat.Comment
		case 1:
			ratings.EaseOfUse = cat.Rating
			comments.EaseOfUse = cat.Comment
		case 2:
			ratings.Interoperability = cat.Rating
			comments.Interoperability = cat.Comment
		case 3:
			ratings.Detection = cat.Rating
			comments.Detection = cat.Comment
		case 4:
			ratings.Reliability = cat.Rating
			comments.Reliability = cat.Comment
		}
	}

	body := map[string]any{
		"product_id":         productID,
		"author":             currentUserName(),
		"role":               sub.CUASExperience,
		"otherUASSystems":    sub.PreviousSystems,
		"categoryRatings":    ratings,
		"additionalComments": comments,
	}
	return doJSON(ctx, client, http.MethodPost, baseURL+"/reviews", token, body, nil)
}

func currentUserName() string {
	if name := os.Getenv("CUASHUB_REVIEWER_NAME"); name != "" {
		return name
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "Anonymous"
}

func handleStats(ctx context.Context, client *http.Client, baseURL, tokenPath string) {
	token := loadToken(tokenPath)
	if token == "" {
		log.Fatal("log in first (admin account required)")
	}

	var out map[string]any
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/admin/stats", token, nil, &out); err != nil {
		log.Fatalf("stats: %v", err)
	}
	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}
