/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/racquetclub-matchbot/csvstore"
	"github.com/mikeb26/racquetclub-matchbot/internal"
	"github.com/mikeb26/racquetclub-matchbot/league"
)

type ClubSubCommand string

const (
	ClubAboutCmd   ClubSubCommand = "about"
	ClubHelpCmd    ClubSubCommand = "help"
	ClubRosterCmd  ClubSubCommand = "roster"
	ClubSinglesCmd ClubSubCommand = "singles"
	ClubDoublesCmd ClubSubCommand = "doubles"
	ClubOutcomeCmd ClubSubCommand = "outcome"
	ClubScoreCmd   ClubSubCommand = "score"
	ClubPlayerCmd  ClubSubCommand = "player"
	ClubMatchesCmd ClubSubCommand = "matches"
)

var clubSubCmdHdlrs = map[ClubSubCommand]CmdHandler{
	ClubAboutCmd:   clubAboutCmdHandler,
	ClubHelpCmd:    clubHelpCmdHandler,
	ClubRosterCmd:  clubRosterCmdHandler,
	ClubSinglesCmd: clubSinglesCmdHandler,
	ClubDoublesCmd: clubDoublesCmdHandler,
	ClubOutcomeCmd: clubOutcomeCmdHandler,
	ClubScoreCmd:   clubScoreCmdHandler,
	ClubPlayerCmd:  clubPlayerCmdHandler,
	ClubMatchesCmd: clubMatchesCmdHandler,
}

// botState is the league shared by all interaction handlers. Interactions
// arrive concurrently so every access holds mu.
type botState struct {
	mu    sync.Mutex
	lg    *league.League
	store *csvstore.Store
}

var bot botState

func initBotState(cfg *internal.Config) error {
	lg := league.NewLeague()
	if cfg.KFactor > 0 {
		lg.Ledger.K = cfg.KFactor
	}
	if cfg.StartingRating > 0 {
		lg.StartingRating = cfg.StartingRating
	}
	store := csvstore.New(cfg.PlayersFile, cfg.MatchesFile)
	if err := store.Load(lg); err != nil {
		return fmt.Errorf("failed to load league: %w", err)
	}

	bot.lg = lg
	bot.store = store
	return nil
}

func clubCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := clubHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := clubSubCmdHdlrs[ClubSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

//go:embed about.txt
var aboutText string

func clubAboutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(aboutText)

	return resp
}

//go:embed help.md
var helpText string

func clubHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(helpText)
	return resp
}

func clubRosterCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	bot.mu.Lock()
	output := league.BuildRosterOutput(bot.lg.Registry)
	bot.mu.Unlock()

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```", truncateContent(output))
	if subOptBool(inter, "broadcast") {
		resp.Data.Flags = 0
	}

	return resp
}

func clubSinglesCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	return clubPairCmdHandler(inter, "singles",
		func(lg *league.League) (*league.Match, error) {
			return lg.CreateSinglesMatch()
		})
}

func clubDoublesCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	return clubPairCmdHandler(inter, "doubles",
		func(lg *league.League) (*league.Match, error) {
			return lg.CreateDoublesMatch()
		})
}

func clubPairCmdHandler(inter *discordgo.Interaction, name string,
	pair func(*league.League) (*league.Match, error)) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	bot.mu.Lock()
	m, err := pair(bot.lg)
	if err == nil {
		err = bot.store.Save(bot.lg)
	}
	var output string
	if m != nil {
		output = league.BuildMatchOutput(m)
	}
	bot.mu.Unlock()

	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error creating %v match: %v", name,
			err)
		log.Printf("discordbot.%v: %v", name, resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("```\n%s```", truncateContent(output))
	if subOptBool(inter, "broadcast") {
		resp.Data.Flags = 0
	}

	return resp
}

func clubOutcomeCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	matchID, haveID := subOptInt(inter, "matchid")
	result, haveResult := subOptInt(inter, "result")
	if !haveID || !haveResult {
		resp.Data.Content = "Please provide a match ID and a result."
		log.Printf("discordbot.outcome: %v", resp.Data.Content)
		return resp
	}
	if result != 0 && result != 1 {
		resp.Data.Content = "Result must be 1 (first side won) or 0 (second side won)."
		log.Printf("discordbot.outcome: %v", resp.Data.Content)
		return resp
	}

	bot.mu.Lock()
	m, err := bot.lg.RecordOutcome(int(matchID), int(result))
	if err == nil {
		err = bot.store.Save(bot.lg)
	}
	var output string
	if m != nil {
		output = league.BuildMatchOutput(m)
	}
	bot.mu.Unlock()

	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error recording outcome for match %d: %v",
			matchID, err)
		log.Printf("discordbot.outcome: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("```\n%s```", truncateContent(output))
	if subOptBool(inter, "broadcast") {
		resp.Data.Flags = 0
	}

	return resp
}

func clubScoreCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	matchID, haveID := subOptInt(inter, "matchid")
	score := subOptString(inter, "score")
	if !haveID || strings.TrimSpace(score) == "" {
		resp.Data.Content = "Please provide a match ID and a score."
		log.Printf("discordbot.score: %v", resp.Data.Content)
		return resp
	}

	bot.mu.Lock()
	m, err := bot.lg.RecordScore(int(matchID), score)
	if err == nil {
		err = bot.store.Save(bot.lg)
	}
	var output string
	if m != nil {
		output = league.BuildMatchOutput(m)
	}
	bot.mu.Unlock()

	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error recording score for match %d: %v",
			matchID, err)
		log.Printf("discordbot.score: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("```\n%s```", truncateContent(output))
	if subOptBool(inter, "broadcast") {
		resp.Data.Flags = 0
	}

	return resp
}

func clubPlayerCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	name := strings.TrimSpace(subOptString(inter, "name"))
	if name == "" {
		resp.Data.Content = "Please provide a player name."
		log.Printf("discordbot.player: %v", resp.Data.Content)
		return resp
	}

	bot.mu.Lock()
	p, err := bot.lg.PlayerStats(name)
	var output, suggestion string
	if p != nil {
		output = league.BuildPlayerStatsOutput(p)
	} else if errors.Is(err, league.ErrPlayerNotFound) {
		names := internal.SuggestNames(name, bot.lg.Registry.Names(), 3)
		if len(names) > 0 {
			suggestion = strings.Join(names, ", ")
		}
	}
	bot.mu.Unlock()

	if err != nil {
		if suggestion != "" {
			resp.Data.Content = fmt.Sprintf("No player named %v; did you mean %v?",
				name, suggestion)
		} else {
			resp.Data.Content = fmt.Sprintf("Error fetching player %v: %v",
				name, err)
		}
		log.Printf("discordbot.player: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("```\n%s```", truncateContent(output))
	if subOptBool(inter, "broadcast") {
		resp.Data.Flags = 0
	}

	return resp
}

func clubMatchesCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	bot.mu.Lock()
	output := league.BuildMatchListOutput(bot.lg.Ledger)
	bot.mu.Unlock()

	resp.Data.Content = fmt.Sprintf("```\n%s```", truncateContent(output))
	if subOptBool(inter, "broadcast") {
		resp.Data.Flags = 0
	}

	return resp
}

// subOptInt extracts a named integer option from the interaction's
// subcommand.
func subOptInt(inter *discordgo.Interaction, name string) (int64, bool) {
	data := inter.ApplicationCommandData()
	if len(data.Options) == 0 {
		return 0, false
	}
	for _, opt := range data.Options[0].Options {
		if opt.Name == name {
			return opt.IntValue(), true
		}
	}
	return 0, false
}

func subOptString(inter *discordgo.Interaction, name string) string {
	data := inter.ApplicationCommandData()
	if len(data.Options) == 0 {
		return ""
	}
	for _, opt := range data.Options[0].Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func subOptBool(inter *discordgo.Interaction, name string) bool {
	data := inter.ApplicationCommandData()
	if len(data.Options) == 0 {
		return false
	}
	for _, opt := range data.Options[0].Options {
		if opt.Name == name {
			return opt.BoolValue()
		}
	}
	return false
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
