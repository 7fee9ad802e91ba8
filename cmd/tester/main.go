// Command tester reads chat lines on stdin and prints what every player of a
// small in-memory room receives.
//
//	alice: hello everyone    alice sends a message to the room
//	/anon alice              alice's client asks for anonymous messages
//	/leave alice             alice's session ends
package main

import (
	"bufio"
	"chat-flex/audience"
	"chat-flex/contract"
	"chat-flex/domain"
	"chat-flex/internal"
	"chat-flex/moderation"
	"chat-flex/pipeline"
	"chat-flex/placeholder"
	"chat-flex/processor"
	"chat-flex/render"
	"chat-flex/runtime"
	"chat-flex/runtime/workers"
	"chat-flex/storage"
	"chat-flex/translator"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	roomFlag := flag.String("room", "alice:en,bob:fr,carol:en-GB", "Players of the room as name:locale pairs")
	flag.Parse()

	// 1. Configuration & Logger
	config, err := internal.Load()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Translation cache (BadgerDB)
	db, err := storage.Open(config.TranslationCachePath, log)
	if err != nil {
		return err
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	tr, err := buildTranslator(ctx, config, db, log)
	if err != nil {
		return err
	}

	// 3. Pipeline
	presets, err := placeholder.NewPresets(config.Locale(), log)
	if err != nil {
		return err
	}
	moderator, err := runtime.PrepareModeration(moderation.DefaultWordLoader(), charReplacement, log)
	if err != nil {
		return err
	}
	chat := pipeline.New("chat", log, pipeline.WithStageTimeout(config.StageTimeout))
	err = processor.RegisterDefaults(chat,
		processor.NewModerationFilter(moderator, log),
		processor.NewTranslation(tr, presets, log))
	if err != nil {
		return err
	}
	log.Info("Pipeline ready", "processors", strings.Join(chat.Names(), ","))

	// 4. Orchestration
	exemptions := runtime.NewExemptions()
	dispatcher := runtime.NewDispatcher(log, chat, presets, render.Markup, exemptions,
		runtime.WithMaxConcurrency(config.MaxConcurrentRecipients))
	orchestrator := runtime.NewOrchestrator(log, workers.NewSupervisor(log, config.RestartInterval),
		dispatcher, exemptions, config.SessionBufferSize, config.Preset,
		runtime.WithCapacityReport(config.MetricInterval))

	done := make(chan error, 1)
	go func() { done <- orchestrator.Start(ctx) }()

	players, err := parseRoom(*roomFlag)
	if err != nil {
		return err
	}

	// 5. Read stdin until EOF or signal
	if err := readLines(ctx, os.Stdin, orchestrator, players); err != nil {
		return err
	}

	orchestrator.Stop()
	return <-done
}

func buildTranslator(ctx context.Context, config internal.Config, db *badger.DB, log *slog.Logger) (contract.Translator, error) {
	if config.Translator != internal.TranslatorLibreTranslate {
		return translator.None, nil
	}

	mirrors := make([]contract.Translator, 0, len(config.Mirrors()))
	for _, url := range config.Mirrors() {
		client := translator.NewLibreTranslate(url, log,
			translator.WithAPIKey(config.LibreTranslateAPIKey),
			translator.WithRate(config.TranslatorRatePerSecond))
		if err := client.Refresh(ctx); err != nil {
			log.Warn("Translation server unavailable", "url", url, "error", err)
			continue
		}
		mirrors = append(mirrors, client)
	}
	if len(mirrors) == 0 {
		log.Warn("No translation server available, messages will not be translated")
		return translator.None, nil
	}

	detecting := translator.NewDetecting(translator.NewRolling(log, mirrors...), config.DetectionThreshold, log)
	return translator.NewCaching(detecting, db, config.TranslationCacheTTL, log), nil
}

func parseRoom(spec string) (map[string]*audience.Player, error) {
	players := make(map[string]*audience.Player)
	for i, entry := range strings.Split(spec, ",") {
		name, locale, _ := strings.Cut(strings.TrimSpace(entry), ":")
		if name == "" {
			return nil, fmt.Errorf("invalid room entry %q", entry)
		}
		players[name] = audience.NewPlayer(name, fmt.Sprintf("session-%d", i+1), locale)
	}
	return players, nil
}

// readLines dispatches stdin lines until EOF or until ctx is cancelled.
// Scanning runs in its own goroutine since a blocked read ignores ctx.
func readLines(ctx context.Context, r io.Reader, orchestrator *runtime.Orchestrator, players map[string]*audience.Player) error {
	members := lo.Map(sortedNames(players), func(name string, _ int) domain.Audience { return players[name] })
	room := audience.NewGroup(members...)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			handleLine(ctx, strings.TrimSpace(line), orchestrator, players, room)
		}
	}
}

func handleLine(ctx context.Context, line string, orchestrator *runtime.Orchestrator,
	players map[string]*audience.Player, room *audience.Group) {
	if line == "" {
		return
	}

	if command, name, ok := strings.Cut(line, " "); ok && strings.HasPrefix(command, "/") {
		publish(orchestrator, players, command, strings.TrimSpace(name))
		return
	}

	name, message, ok := strings.Cut(line, ":")
	sender, known := players[strings.TrimSpace(name)]
	if !ok || !known {
		color.Warn.Printf("Expected \"<player>: <message>\", got %q\n", line)
		return
	}

	before := lo.MapValues(players, func(p *audience.Player, _ string) int { return len(p.Deliveries()) })
	summary := orchestrator.Dispatch(ctx, sender, room, strings.TrimSpace(message))
	printDeliveries(players, before, summary)
}

func publish(orchestrator *runtime.Orchestrator, players map[string]*audience.Player, command, name string) {
	player, ok := players[name]
	if !ok {
		color.Warn.Printf("Unknown player %q\n", name)
		return
	}
	sessionID, _ := domain.SessionOf(player)
	evt := domain.SessionEvent{SessionID: sessionID, At: time.Now().UTC()}
	switch command {
	case "/anon":
		evt.Type, evt.Packet = domain.SessionPacket, workers.FooClientPacket
	case "/leave":
		evt.Type = domain.SessionLeave
	default:
		color.Warn.Printf("Unknown command %q\n", command)
		return
	}
	if orchestrator.Publish(evt) {
		color.Info.Printf("%s %s\n", command, name)
	}
}

func printDeliveries(players map[string]*audience.Player, before map[string]int, summary runtime.Summary) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Recipient", "Locale", "From", "Message"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, name := range sortedNames(players) {
		player := players[name]
		locale, _ := player.Metadata(domain.KeyLocale)
		for _, delivery := range player.Deliveries()[before[name]:] {
			table.Append([]string{name, locale, domain.NameOf(delivery.Source), delivery.Formatted.Plain})
		}
	}
	table.Render()

	color.Printf("<green>%d delivered</> <yellow>%d suppressed</> <red>%d failed</> out of %d\n",
		summary.Delivered, summary.Suppressed, summary.Failed, summary.Total)
}

func sortedNames(players map[string]*audience.Player) []string {
	names := lo.Keys(players)
	sort.Strings(names)
	return names
}
