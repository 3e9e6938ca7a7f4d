/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/mikeb26/racquetclub-matchbot/internal"
)

var botPubKey ed25519.PublicKey
var botAppId string
var clubCmdId string
var client *discordgo.Session

type TopLevelCommand string

const (
	ClubCmd TopLevelCommand = "club"
)

type CmdHandler func(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse

var topLevelCmdHdlrs = map[TopLevelCommand]CmdHandler{
	ClubCmd: clubCmdHandler,
}

func interactionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !discordgo.VerifyInteraction(r, botPubKey) {
		log.Printf("discordbot.int: failed to verify")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("discordbot.int: failed to read request body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inter discordgo.Interaction
	if err := inter.UnmarshalJSON(body); err != nil {
		log.Printf("discordbot.int: failed to unmarshal interaction: err:%v body:%v",
			err, body)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp := &discordgo.InteractionResponse{}
	if inter.Type == discordgo.InteractionPing {
		resp.Type = discordgo.InteractionResponsePong
	} else if inter.Type == discordgo.InteractionApplicationCommand {
		hdlr, ok :=
			topLevelCmdHdlrs[TopLevelCommand(inter.ApplicationCommandData().Name)]
		if !ok {
			resp.Type = discordgo.InteractionResponseChannelMessageWithSource
			resp.Data = &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("unknown command '%v'",
					inter.ApplicationCommandData().Name),
				Flags: discordgo.MessageFlagsEphemeral,
			}
		} else {
			resp = hdlr(ctx, &inter)
		}
	} else {
		log.Printf("discordbot.int: unimplemented interaction type %v: inter:%v",
			inter.Type, inter)
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	rawResp, err := json.Marshal(resp)
	if err != nil {
		log.Printf("discordbot.int: failed to marshal resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(rawResp)
	if err != nil {
		log.Printf("discordbot.int: failed to write resp: err:%v", err)
		return
	}
}

func init() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
}

// loadSecrets reads the bot credentials from a .env file or the
// environment: MATCHBOT_DISCORD_PUBKEY, MATCHBOT_DISCORD_TOKEN,
// MATCHBOT_DISCORD_APPID, and optionally MATCHBOT_DISCORD_CMDID.
func loadSecrets() error {
	// .env is optional; the variables may be set directly
	_ = godotenv.Load()

	pubKeyText := os.Getenv("MATCHBOT_DISCORD_PUBKEY")
	token := os.Getenv("MATCHBOT_DISCORD_TOKEN")
	botAppId = os.Getenv("MATCHBOT_DISCORD_APPID")
	clubCmdId = os.Getenv("MATCHBOT_DISCORD_CMDID")
	if pubKeyText == "" || token == "" || botAppId == "" {
		return fmt.Errorf("MATCHBOT_DISCORD_PUBKEY, MATCHBOT_DISCORD_TOKEN, and MATCHBOT_DISCORD_APPID must be set")
	}

	pubKeyBytes, err := hex.DecodeString(pubKeyText)
	if err != nil {
		return fmt.Errorf("failed to parse public key: %w", err)
	}
	botPubKey = ed25519.PublicKey(pubKeyBytes)

	client, err = discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("failed to initialize discord client: %w", err)
	}

	return nil
}

func shouldUpdateCmdRegistration(cmd *discordgo.ApplicationCommand) bool {
	cmdJson, err := json.Marshal(cmd)
	if err != nil {
		log.Printf("discordbot.reg: failed to marshal cmd: %v", err)
		return false
	}
	hasher := sha256.New()
	hasher.Write(cmdJson)
	hash := hasher.Sum(nil)
	hexString := hex.EncodeToString(hash)

	shouldUpdate := (hexString != os.Getenv("MATCHBOT_DISCORD_CMDHASH"))

	if shouldUpdate {
		log.Printf("discordbot.reg: updating cmd reg; please update MATCHBOT_DISCORD_CMDHASH to %v",
			hexString)
	}

	return shouldUpdate
}

func registerSlashCommands() {
	broadcastOpt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        "broadcast",
		Description: "Share with the rest of the channel instead of only to you (default is false)",
		Required:    false,
	}

	clubCmd := &discordgo.ApplicationCommand{
		Name:        string(ClubCmd),
		Description: "Club matchmaking commands; try /club help to start",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(ClubHelpCmd),
				Description: "Show usage for club",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(ClubAboutCmd),
				Description: "Show information about racquetclub-matchbot",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(ClubRosterCmd),
				Description: "Show all registered players",
				Options: []*discordgo.ApplicationCommandOption{
					broadcastOpt,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(ClubSinglesCmd),
				Description: "Pair the 2 closest-rated available players",
				Options: []*discordgo.ApplicationCommandOption{
					broadcastOpt,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(ClubDoublesCmd),
				Description: "Pair the most balanced 2v2 from 4 available players",
				Options: []*discordgo.ApplicationCommandOption{
					broadcastOpt,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(ClubOutcomeCmd),
				Description: "Record a match outcome and update ratings",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "matchid",
						Description: "Match id (as returned by singles/doubles)",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "result",
						Description: "1 if the first side won, 0 if the second side won",
						Required:    true,
					},
					broadcastOpt,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(ClubScoreCmd),
				Description: "Attach a score annotation to a match",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "matchid",
						Description: "Match id (as returned by singles/doubles)",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "score",
						Description: "Score annotation, e.g. 6-4,3-6,7-5",
						Required:    true,
					},
					broadcastOpt,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(ClubPlayerCmd),
				Description: "Show one player's rating and history",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Player name",
						Required:    true,
					},
					broadcastOpt,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(ClubMatchesCmd),
				Description: "List all matches",
				Options: []*discordgo.ApplicationCommandOption{
					broadcastOpt,
				},
			},
		},
	}

	if clubCmdId == "" {
		cmd, err := client.ApplicationCommandCreate(botAppId, "", clubCmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to register %v: %v",
				clubCmd.Name, err)
			return
		}

		log.Printf("discordbot.reg: registered %v(cmdID:%v)", cmd.Name, cmd.ID)
	} else if shouldUpdateCmdRegistration(clubCmd) {
		cmd, err := client.ApplicationCommandEdit(botAppId, "", clubCmdId,
			clubCmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to update %v: %v", clubCmd.Name,
				err)
			return
		}

		log.Printf("discordbot.reg: updated %v(cmdID:%v)", cmd.Name, cmd.ID)
	}
}

func main() {
	if err := loadSecrets(); err != nil {
		log.Fatalf("discordbot.main: %v", err)
	}

	cfgPath := os.Getenv("MATCHBOT_CONFIG")
	if cfgPath == "" {
		cfgPath = internal.DefaultConfigFile
	}
	cfg, err := internal.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("discordbot.main: failed to load config: %v", err)
	}
	if err := initBotState(cfg); err != nil {
		log.Fatalf("discordbot.main: %v", err)
	}

	go registerSlashCommands()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	log.Printf("discordbot.main: starting server on %v%v", hostname,
		cfg.ListenAddr)

	http.HandleFunc("/DiscordBot/Interaction", interactionHandler)
	if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
		log.Fatalf("discordbot.main: Serve failed: %v", err)
	}

	log.Printf("discordbot.main: exiting")
}
