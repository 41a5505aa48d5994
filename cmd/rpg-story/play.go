package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
	"github.com/KirkDiggler/rpg-story/internal/services/session"
)

var resumeSaveID string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a story interactively",
	Long: `Create a character and play through a story on the terminal.

Pass --save to resume a run kept in Redis. Type q at any prompt to stop; the run is
saved after every action.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&resumeSaveID, "save", "", "save id to resume")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	out := cmd.OutOrStdout()
	subscribeBanners(a.bus, out)

	c := newConsole(a.session, cmd.InOrStdin(), out)
	c.saveID = resumeSaveID
	return c.run(ctx)
}

// console drives a session over line based input
type console struct {
	svc session.Service
	in  *bufio.Scanner
	out io.Writer

	saveID string

	// classes offered by the last level-up, empty after a resume
	offered []string

	// died is set once the save has been discarded
	died bool
}

func newConsole(svc session.Service, in io.Reader, out io.Writer) *console {
	return &console{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// printf writes to the console output. Terminal write failures are not actionable.
func (c *console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// prompt reads one trimmed line. ok is false on end of input or when the player quits.
func (c *console) prompt(label string) (line string, ok bool) {
	c.printf("%s> ", label)
	if !c.in.Scan() {
		c.printf("\n")
		return "", false
	}
	line = strings.TrimSpace(c.in.Text())
	if strings.EqualFold(line, "q") || strings.EqualFold(line, "quit") {
		return "", false
	}
	return line, true
}

// pick lists options and reads a number or a name from the list
func (c *console) pick(label string, options []string) (string, bool) {
	for i, option := range options {
		c.printf("  %d) %s\n", i+1, option)
	}
	for {
		line, ok := c.prompt(label)
		if !ok {
			return "", false
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		for _, option := range options {
			if strings.EqualFold(option, line) {
				return option, true
			}
		}
		c.printf("Pick 1-%d.\n", len(options))
	}
}

// report prints rule violations and hands anything else back to the caller
func (c *console) report(err error) error {
	if errors.IsInvalidArgument(err) || errors.IsFailedPrecondition(err) || errors.IsNotFound(err) {
		c.printf("! %s\n", errors.Reason(err))
		return nil
	}
	return err
}

// run plays until the player quits, dies or input ends
func (c *console) run(ctx context.Context) error {
	if c.saveID == "" {
		done, err := c.newGame(ctx)
		if err != nil || done {
			return err
		}
	}

	for {
		got, err := c.svc.GetGame(ctx, &session.GetGameInput{SaveID: c.saveID})
		if err != nil {
			return err
		}
		save := got.SaveGame

		var done bool
		switch save.Phase {
		case game.PhaseStorySelection:
			done, err = c.chooseStory(ctx)
		case game.PhaseExploring:
			done, err = c.explore(ctx)
		case game.PhaseLevelUp:
			done, err = c.levelUp(ctx, save)
		case game.PhaseClassSelection:
			done, err = c.selectClass(ctx)
		case game.PhaseShopping:
			done, err = c.shop(ctx)
		default:
			return errors.Internalf("save %s is in unknown phase %q", save.ID, save.Phase)
		}
		if err != nil {
			return err
		}
		if done {
			if !c.died {
				c.printf("Saved as %s.\n", c.saveID)
			}
			return nil
		}
	}
}

func (c *console) newGame(ctx context.Context) (bool, error) {
	catalog, err := c.svc.GetCatalog(ctx, &session.GetCatalogInput{})
	if err != nil {
		return false, err
	}

	for {
		name, ok := c.prompt("name")
		if !ok {
			return true, nil
		}
		c.printf("Gender:\n")
		gender, ok := c.pick("gender", []string{string(game.GenderMale), string(game.GenderFemale), string(game.GenderOther)})
		if !ok {
			return true, nil
		}
		c.printf("Race:\n")
		race, ok := c.pick("race", catalog.Races)
		if !ok {
			return true, nil
		}
		c.printf("Class:\n")
		class, ok := c.pick("class", catalog.Classes)
		if !ok {
			return true, nil
		}

		created, err := c.svc.NewGame(ctx, &session.NewGameInput{
			Name:   name,
			Gender: game.Gender(gender),
			Race:   race,
			Class:  class,
		})
		if err != nil {
			if err := c.report(err); err != nil {
				return false, err
			}
			continue
		}

		c.saveID = created.SaveGame.ID
		c.printf("Welcome, %s. Resume this run with --save %s\n", name, c.saveID)
		return false, nil
	}
}

func (c *console) chooseStory(ctx context.Context) (bool, error) {
	catalog, err := c.svc.GetCatalog(ctx, &session.GetCatalogInput{})
	if err != nil {
		return false, err
	}
	if len(catalog.Stories) == 0 {
		return false, errors.FailedPrecondition("the content bundle has no stories")
	}

	c.printf("Choose a story:\n")
	story, ok := c.pick("story", catalog.Stories)
	if !ok {
		return true, nil
	}

	if _, err := c.svc.SelectStory(ctx, &session.SelectStoryInput{SaveID: c.saveID, Story: story}); err != nil {
		return false, c.report(err)
	}
	return false, nil
}

func (c *console) status(p *game.Player) {
	c.printf("[%s  Lv %d  XP %d  Hearts %d/%d  Money %d]\n",
		p.Name, p.Level, p.XP, p.Hearts, p.MaxHearts, p.Stats.Money)
}

func (c *console) explore(ctx context.Context) (bool, error) {
	scene, err := c.svc.GetScene(ctx, &session.GetSceneInput{SaveID: c.saveID})
	if err != nil {
		return false, err
	}

	c.printf("\n")
	c.status(scene.SaveGame.Player)
	if scene.DeadEnd {
		c.printf("The path ends here.\n")
	} else {
		c.printf("%s\n", scene.Text)
	}

	rolling := scene.DiceOffered && !scene.Outcome.Resolved()
	if rolling {
		if scene.Advantage {
			c.printf("Fortune favours you: the die will land 4 or higher.\n")
		}
		c.printf("  r) roll the die\n  k) press on without rolling\n")
	} else if scene.Outcome.Kind == game.DiceRolled {
		c.printf("You rolled %d.\n", scene.Outcome.Value)
	}
	for i, visible := range scene.Choices {
		c.printf("  %d) %s\n", i+1, visible.Choice.Text)
	}
	c.printf("  i) inventory  s) stories  q) quit\n")

	line, ok := c.prompt("choice")
	if !ok {
		return true, nil
	}

	switch strings.ToLower(line) {
	case "r":
		rolled, err := c.svc.RollDice(ctx, &session.RollDiceInput{SaveID: c.saveID})
		if err != nil {
			return false, c.report(err)
		}
		c.printf("The die shows %d.\n", rolled.Outcome.Value)
		return false, nil
	case "k":
		if _, err := c.svc.SkipDice(ctx, &session.SkipDiceInput{SaveID: c.saveID}); err != nil {
			return false, c.report(err)
		}
		return false, nil
	case "i":
		return c.inventory(ctx)
	case "s":
		return c.chooseStory(ctx)
	}

	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(scene.Choices) {
		c.printf("Unknown choice %q.\n", line)
		return false, nil
	}

	made, err := c.svc.MakeChoice(ctx, &session.MakeChoiceInput{
		SaveID:      c.saveID,
		ChoiceIndex: scene.Choices[n-1].Index,
	})
	if err != nil {
		return false, c.report(err)
	}
	if made.Died {
		c.died = true
		c.printf("Your journey ends here. Start a new game to try again.\n")
		return true, nil
	}
	return false, nil
}

// parseAllocation reads "strength=1 vitality=1" or "strength vitality". A bare
// stat name spends one point and may repeat.
func parseAllocation(line string) (game.StatMap, error) {
	allocation := game.StatMap{}
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, errors.InvalidArgument("name the stats to raise, e.g. strength=1 vitality=1")
	}

	for _, field := range fields {
		name, amount := field, 1
		if i := strings.IndexByte(field, '='); i >= 0 {
			name = field[:i]
			n, err := strconv.Atoi(field[i+1:])
			if err != nil {
				return nil, errors.InvalidArgumentf("invalid amount in %q", field)
			}
			amount = n
		}

		stat := game.Stat(strings.ToLower(name))
		if !stat.IsValid() {
			return nil, errors.InvalidArgumentf("unknown stat %q", name)
		}
		allocation[stat] += amount
	}
	return allocation, nil
}

func (c *console) levelUp(ctx context.Context, save *game.SaveGame) (bool, error) {
	c.printf("\nLevel %d reached. Spend %d stat points.\n", save.Player.Level, save.PendingStatPoints)
	c.printf("Stats: %s\n", formatStats(save.Player.Stats))

	line, ok := c.prompt("allocate")
	if !ok {
		return true, nil
	}
	allocation, err := parseAllocation(line)
	if err != nil {
		return false, c.report(err)
	}

	applied, err := c.svc.ApplyLevelUp(ctx, &session.ApplyLevelUpInput{SaveID: c.saveID, Allocation: allocation})
	if err != nil {
		return false, c.report(err)
	}
	c.offered = applied.OfferedClasses
	return false, nil
}

func (c *console) selectClass(ctx context.Context) (bool, error) {
	c.printf("\nA new path opens. Take up a second calling, or n to decline.\n")
	for i, class := range c.offered {
		c.printf("  %d) %s\n", i+1, class)
	}

	line, ok := c.prompt("class")
	if !ok {
		return true, nil
	}

	class := line
	if strings.EqualFold(line, "n") {
		class = ""
	} else if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(c.offered) {
		class = c.offered[n-1]
	}

	if _, err := c.svc.SelectClass(ctx, &session.SelectClassInput{SaveID: c.saveID, Class: class}); err != nil {
		return false, c.report(err)
	}
	c.offered = nil
	return false, nil
}

func (c *console) inventory(ctx context.Context) (bool, error) {
	inv, err := c.svc.GetInventory(ctx, &session.GetInventoryInput{SaveID: c.saveID})
	if err != nil {
		return false, err
	}

	c.printf("\nStats: %s  Hearts %d/%d\n", formatStats(inv.Totals.Stats), inv.Totals.Hearts, inv.Totals.MaxHearts)
	for _, slot := range game.AllSlots {
		if item, ok := inv.Equipment.Get(slot); ok {
			c.printf("  [%s] %s\n", slot, item.Name)
		}
	}
	if len(inv.Groups) == 0 {
		c.printf("Your pack is empty.\n")
	}
	for _, group := range inv.Groups {
		c.printf("%s:\n", group.Type)
		for _, item := range group.Items {
			if item.Stackable {
				c.printf("  %s x%d (%s)\n", item.Name, item.Quantity, item.ID)
			} else {
				c.printf("  %s (%s)\n", item.Name, item.ID)
			}
		}
	}
	c.printf("  u <item>) use  e <item>) equip  x <slot>) unequip  enter) back\n")

	line, ok := c.prompt("inventory")
	if !ok {
		return true, nil
	}
	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(verb) {
	case "":
		return false, nil
	case "u":
		used, err := c.svc.UseItem(ctx, &session.UseItemInput{SaveID: c.saveID, ItemID: arg})
		if err != nil {
			return false, c.report(err)
		}
		if used.Died {
			c.died = true
			c.printf("Your journey ends here. Start a new game to try again.\n")
			return true, nil
		}
	case "e":
		if _, err := c.svc.EquipItem(ctx, &session.EquipItemInput{SaveID: c.saveID, ItemID: arg}); err != nil {
			return false, c.report(err)
		}
	case "x":
		if _, err := c.svc.UnequipItem(ctx, &session.UnequipItemInput{SaveID: c.saveID, Slot: game.Slot(arg)}); err != nil {
			return false, c.report(err)
		}
	default:
		c.printf("Unknown command %q.\n", verb)
	}
	return false, nil
}

func (c *console) shop(ctx context.Context) (bool, error) {
	shop, err := c.svc.GetShop(ctx, &session.GetShopInput{SaveID: c.saveID})
	if err != nil {
		return false, err
	}

	c.printf("\n%s  (money %d)\n", shop.Shop.Name, shop.Money)
	for i, offer := range shop.BuyOffers {
		stock := ""
		if offer.Entry.Stock != nil {
			stock = fmt.Sprintf("  stock %d", *offer.Entry.Stock)
		}
		c.printf("  b%d) %s  %dg%s\n", i+1, offer.Entry.Item.Name, offer.Price, stock)
	}
	for i, offer := range shop.SellOffers {
		c.printf("  s%d) sell %s  %dg\n", i+1, offer.Item.Name, offer.Price)
	}
	c.printf("  i) inventory  l) leave\n")

	line, ok := c.prompt("shop")
	if !ok {
		return true, nil
	}
	line = strings.ToLower(line)

	switch {
	case line == "l":
		if _, err := c.svc.CloseShop(ctx, &session.CloseShopInput{SaveID: c.saveID}); err != nil {
			return false, c.report(err)
		}
	case line == "i":
		return c.inventory(ctx)
	case strings.HasPrefix(line, "b"):
		n, err := strconv.Atoi(line[1:])
		if err != nil || n < 1 || n > len(shop.BuyOffers) {
			c.printf("Unknown item %q.\n", line)
			return false, nil
		}
		bought, err := c.svc.Buy(ctx, &session.BuyInput{SaveID: c.saveID, ItemID: shop.BuyOffers[n-1].Entry.Item.ID})
		if err != nil {
			return false, c.report(err)
		}
		c.printf("Bought %s for %d.\n", shop.BuyOffers[n-1].Entry.Item.Name, bought.Price)
	case strings.HasPrefix(line, "s"):
		n, err := strconv.Atoi(line[1:])
		if err != nil || n < 1 || n > len(shop.SellOffers) {
			c.printf("Unknown item %q.\n", line)
			return false, nil
		}
		sold, err := c.svc.Sell(ctx, &session.SellInput{SaveID: c.saveID, ItemID: shop.SellOffers[n-1].Item.ID})
		if err != nil {
			return false, c.report(err)
		}
		c.printf("Sold %s for %d.\n", shop.SellOffers[n-1].Item.Name, sold.Price)
	default:
		c.printf("Unknown command %q.\n", line)
	}
	return false, nil
}

func formatStats(s game.Stats) string {
	parts := make([]string, 0, len(game.AllStats))
	for _, stat := range game.AllStats {
		value, _ := s.Get(stat)
		parts = append(parts, fmt.Sprintf("%s %d", stat, value))
	}
	return strings.Join(parts, ", ")
}
