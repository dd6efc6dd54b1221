package app

import (
	"github.com/bwmarrin/discordgo"
)

const QueryCommand = "query"
const StatusCommand = "status"

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        QueryCommand,
		Description: "Query the server to list all running instances.",
	},
	{
		Name:        StatusCommand,
		Description: "Get the status of the configured servers.",
	},
}
