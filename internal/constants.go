/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent = "racquetclub-matchbot/0.3.0 (+https://github.com/mikeb26/racquetclub-matchbot)"

	DefaultPlayersFile = "players.csv"
	DefaultMatchesFile = "matches.csv"
	DefaultConfigFile  = "matchbot.yaml"
)
