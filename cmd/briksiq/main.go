package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/briksiq/core/internal/catalog"
	"github.com/briksiq/core/internal/chat"
	"github.com/briksiq/core/internal/config"
	"github.com/briksiq/core/internal/favorites"
	"github.com/briksiq/core/internal/listing"
	"github.com/briksiq/core/internal/logger"
	"github.com/briksiq/core/internal/models"
	"github.com/briksiq/core/internal/search"
	"github.com/briksiq/core/internal/session"
	"github.com/briksiq/core/internal/telephony"
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.App.Env)
	log.Info("Starting BriksIQ console", map[string]interface{}{
		"version":     "0.1.0",
		"environment": cfg.App.Env,
	})

	// Load the property catalog, from a seed file when configured
	var cat *catalog.Catalog
	if cfg.Catalog.SeedFile != "" {
		cat, err = catalog.LoadSeedFile(cfg.Catalog.SeedFile, log)
	} else {
		cat, err = catalog.Default(log)
	}
	if err != nil {
		log.Fatal("Failed to load property catalog", err, map[string]interface{}{
			"seed_file": cfg.Catalog.SeedFile,
		})
	}

	// Wire the engine components
	provider := session.NewMemoryProvider()
	gate := session.NewGate(provider, cfg.Auth, log)
	provider.Restore()

	app := &console{
		log:       log,
		catalog:   cat,
		search:    search.NewController(cat, log),
		favorites: favorites.NewTracker(cat, log),
		form:      listing.NewForm(&devCreator{log: log}, log),
		chat:      chat.NewSession(chat.NewResponder(), cfg.Chat, log),
		gate:      gate,
		dialer:    telephony.NewLogDialer(log),
		out:       os.Stdout,
	}
	defer app.chat.Close()

	app.run(os.Stdin)
}

// devCreator is the development listing sink. Accepted submissions are logged
// and kept in memory for the lifetime of the process.
type devCreator struct {
	log      *logger.Logger
	accepted []models.Submission
}

func (c *devCreator) CreateListing(_ context.Context, sub models.Submission) error {
	c.accepted = append(c.accepted, sub)
	c.log.Info("Listing accepted", map[string]interface{}{
		"id":    sub.ID,
		"title": sub.Title,
		"price": sub.Price,
	})
	return nil
}

// console dispatches interactive commands to the engine components.
type console struct {
	log       *logger.Logger
	catalog   *catalog.Catalog
	search    *search.Controller
	favorites *favorites.Tracker
	form      *listing.Form
	chat      *chat.Session
	gate      *session.Gate
	dialer    telephony.Dialer
	out       *os.File
}

func (c *console) run(in *os.File) {
	fmt.Fprintln(c.out, "BriksIQ console. Type 'help' for commands, 'quit' to exit.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		cmd, args := parts[0], parts[1:]
		if cmd == "quit" || cmd == "exit" {
			break
		}
		c.dispatch(cmd, args)
	}

	fmt.Fprintln(c.out, "Bye.")
}

func (c *console) dispatch(cmd string, args []string) {
	switch cmd {
	case "help":
		c.printHelp()
	case "list":
		c.printProperties(c.catalog.All())
	case "featured":
		c.printProperties(c.catalog.Featured())
	case "show":
		c.showProperty(args)
	case "search":
		c.search.SetQuery(strings.Join(args, " "))
		c.printProperties(c.search.Results())
	case "filter":
		c.applyFilter(args)
	case "filters":
		for _, opt := range search.Options() {
			marker := " "
			if opt.Tag == c.search.SelectedTag() {
				marker = "*"
			}
			fmt.Fprintf(c.out, "%s %-12s %s\n", marker, opt.Tag, opt.Label)
		}
	case "locations":
		for _, loc := range search.PopularLocations() {
			fmt.Fprintln(c.out, loc)
		}
	case "panel":
		if c.search.TogglePanel() {
			fmt.Fprintln(c.out, "Filter panel expanded.")
		} else {
			fmt.Fprintln(c.out, "Filter panel collapsed.")
		}
	case "clear":
		c.search.Reset()
		fmt.Fprintln(c.out, "Search cleared.")
	case "fav":
		c.toggleFavorite(args)
	case "favs":
		c.listFavorites(args)
	case "call":
		c.contactAgent(args, c.dialer.Call, "Calling")
	case "sms":
		c.contactAgent(args, c.dialer.SMS, "Messaging")
	case "signup":
		c.signUp(args)
	case "login":
		c.signIn(args)
	case "logout":
		c.logout()
	case "whoami":
		c.whoami()
	case "form":
		c.formCommand(args)
	case "chat":
		c.sendChat(args)
	case "transcript":
		c.printTranscript()
	case "cancel":
		c.cancelReply(args)
	default:
		fmt.Fprintf(c.out, "Unknown command %q. Type 'help'.\n", cmd)
	}
}

func (c *console) printHelp() {
	fmt.Fprint(c.out, `Catalog
  list                         all properties
  featured                     featured properties
  show <id>                    property details
Search
  search <text>                free-text search over title and location
  filter <tag>                 apply a filter tag ('filters' lists them)
  filters                      list filter tags
  locations                    popular location shortcuts
  panel                        toggle the filter panel
  clear                        reset query and filter
Favorites
  fav <id>                     toggle a favorite
  favs [text]                  list favorites, optionally filtered
Agent contact
  call <id> | sms <id>         reach the listing agent
Account
  signup <email> <password> <name> <buyer|agent>
  login <email> <password>
  logout | whoami
Listing form
  form set <field> <value>     fields: title price location bedrooms bathrooms area description
  form type <t>                house | apartment | villa | commercial
  form amenity <name>          toggle an amenity
  form show | form submit | form reset
Chat
  chat <message>               message the assistant
  transcript                   show the conversation
  cancel <message-id>          cancel a pending reply
`)
}

func (c *console) printProperties(props []models.Property) {
	if len(props) == 0 {
		fmt.Fprintln(c.out, "No properties found.")
		return
	}
	for _, p := range props {
		marker := " "
		if c.favorites.Contains(p.ID) {
			marker = "♥"
		}
		fmt.Fprintf(c.out, "%s %-3s %-40s PKR %.0f  %s\n", marker, p.ID, p.Title, p.Price, p.Location)
	}
}

func (c *console) showProperty(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: show <id>")
		return
	}
	p, err := c.catalog.ByID(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "Property not found: %s\n", args[0])
		return
	}
	fmt.Fprintf(c.out, "%s\nPKR %.0f\n%s\n%d bed, %d bath, %.0f sq ft\n%s\n",
		p.Title, p.Price, p.Location, p.Bedrooms, p.Bathrooms, p.Area, p.Description)
	if len(p.Amenities) > 0 {
		fmt.Fprintf(c.out, "Amenities: %s\n", strings.Join(p.Amenities, ", "))
	}
	fmt.Fprintf(c.out, "Agent: %s (%s)\n", p.AgentName, p.AgentPhone)
}

func (c *console) applyFilter(args []string) {
	tag := search.TagAll
	if len(args) > 0 {
		tag = search.Tag(args[0])
	}
	if !tag.Known() {
		fmt.Fprintf(c.out, "Unknown filter %q. Type 'filters'.\n", args[0])
		return
	}
	c.search.SelectTag(tag)
	c.printProperties(c.search.Results())
}

func (c *console) toggleFavorite(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: fav <id>")
		return
	}
	added, err := c.favorites.Toggle(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "Property not found: %s\n", args[0])
		return
	}
	if added {
		fmt.Fprintf(c.out, "Added %s to favorites (%d total).\n", args[0], c.favorites.Count())
	} else {
		fmt.Fprintf(c.out, "Removed %s from favorites (%d total).\n", args[0], c.favorites.Count())
	}
}

func (c *console) listFavorites(args []string) {
	if len(args) > 0 {
		c.printProperties(c.favorites.Search(strings.Join(args, " ")))
		return
	}
	c.printProperties(c.favorites.Properties())
}

func (c *console) contactAgent(args []string, action func(string) error, verb string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: call <id> | sms <id>")
		return
	}
	p, err := c.catalog.ByID(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "Property not found: %s\n", args[0])
		return
	}
	if err := action(p.AgentPhone); err != nil {
		fmt.Fprintf(c.out, "Cannot reach %s: %v\n", p.AgentName, err)
		return
	}
	fmt.Fprintf(c.out, "%s %s at %s\n", verb, p.AgentName, p.AgentPhone)
}

func (c *console) signUp(args []string) {
	if len(args) < 4 {
		fmt.Fprintln(c.out, "Usage: signup <email> <password> <name> <buyer|agent>")
		return
	}
	role := models.Role(args[len(args)-1])
	name := strings.Join(args[2:len(args)-1], " ")
	profile, err := c.gate.SignUp(context.Background(), args[0], args[1], name, role)
	if err != nil {
		fmt.Fprintf(c.out, "Sign up failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Welcome, %s (%s).\n", profile.DisplayName, profile.Role)
}

func (c *console) signIn(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "Usage: login <email> <password>")
		return
	}
	if err := c.gate.SignIn(context.Background(), args[0], args[1]); err != nil {
		fmt.Fprintf(c.out, "Login failed: %v\n", err)
		return
	}
	c.whoami()
}

func (c *console) logout() {
	if err := c.gate.Logout(context.Background()); err != nil {
		fmt.Fprintf(c.out, "Logout failed: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "Logged out.")
}

func (c *console) whoami() {
	uid, ok := c.gate.CurrentUser()
	if !ok {
		fmt.Fprintln(c.out, "Not logged in.")
		return
	}
	if profile := c.gate.Profile(); profile != nil {
		fmt.Fprintf(c.out, "%s <%s> role=%s uid=%s\n", profile.DisplayName, profile.Email, profile.Role, uid)
		return
	}
	fmt.Fprintf(c.out, "uid=%s (no profile)\n", uid)
}

func (c *console) formCommand(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "Usage: form set|type|amenity|show|submit|reset ...")
		return
	}
	switch args[0] {
	case "set":
		if len(args) < 3 {
			fmt.Fprintln(c.out, "Usage: form set <field> <value>")
			return
		}
		field := listing.Field(args[1])
		if err := c.form.SetField(field, strings.Join(args[2:], " ")); err != nil {
			fmt.Fprintf(c.out, "%v\n", err)
			return
		}
		fmt.Fprintf(c.out, "%s = %q\n", field, c.form.FieldValue(field))
	case "type":
		if len(args) != 2 {
			fmt.Fprintln(c.out, "Usage: form type <house|apartment|villa|commercial>")
			return
		}
		if err := c.form.SetPropertyType(models.PropertyType(args[1])); err != nil {
			fmt.Fprintf(c.out, "%v\n", err)
			return
		}
		fmt.Fprintf(c.out, "Property type: %s\n", c.form.PropertyType())
	case "amenity":
		if len(args) < 2 {
			fmt.Fprintln(c.out, "Usage: form amenity <name>")
			return
		}
		selected, err := c.form.ToggleAmenity(strings.Join(args[1:], " "))
		if err != nil {
			fmt.Fprintf(c.out, "%v\nAvailable: %s\n", err, strings.Join(listing.Amenities, ", "))
			return
		}
		if selected {
			fmt.Fprintln(c.out, "Amenity selected.")
		} else {
			fmt.Fprintln(c.out, "Amenity deselected.")
		}
	case "show":
		c.printForm()
	case "submit":
		sub, err := c.form.Submit(context.Background())
		if err != nil {
			fmt.Fprintf(c.out, "Submission rejected: %v\n", err)
			return
		}
		fmt.Fprintf(c.out, "Listing submitted: %s (%s)\n", sub.Title, sub.ID)
	case "reset":
		c.form.Reset()
		fmt.Fprintln(c.out, "Form cleared.")
	default:
		fmt.Fprintf(c.out, "Unknown form command %q.\n", args[0])
	}
}

func (c *console) printForm() {
	fields := []listing.Field{
		listing.FieldTitle, listing.FieldPrice, listing.FieldLocation,
		listing.FieldBedrooms, listing.FieldBathrooms, listing.FieldArea,
		listing.FieldDescription,
	}
	for _, field := range fields {
		fmt.Fprintf(c.out, "%-12s %s\n", field, c.form.FieldValue(field))
	}
	fmt.Fprintf(c.out, "%-12s %s\n", "type", c.form.PropertyType())
	fmt.Fprintf(c.out, "%-12s %s\n", "amenities", strings.Join(c.form.SelectedAmenities(), ", "))
}

func (c *console) sendChat(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "Usage: chat <message>")
		return
	}
	msg, err := c.chat.Send(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(c.out, "Message rejected: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Sent (id %s). Type 'transcript' to read replies.\n", msg.ID)
}

func (c *console) printTranscript() {
	for _, msg := range c.chat.Messages() {
		speaker := "assistant"
		if msg.IsUser {
			speaker = "you"
		}
		fmt.Fprintf(c.out, "[%s] %-9s %s\n", msg.Timestamp.Format("15:04:05"), speaker, msg.Text)
	}
	if pending := c.chat.PendingReplies(); pending > 0 {
		fmt.Fprintf(c.out, "(%d reply pending)\n", pending)
	}
}

func (c *console) cancelReply(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: cancel <message-id>")
		return
	}
	if c.chat.CancelPending(args[0]) {
		fmt.Fprintln(c.out, "Reply cancelled.")
		return
	}
	fmt.Fprintln(c.out, "No pending reply for that message.")
}
