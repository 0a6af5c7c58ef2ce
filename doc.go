/*
Package slacklane sends build notifications to slack and manages the messages and files it
creates.

A Bot posts messages with a rich attachment describing the build (lane, result, git branch,
author and last commit), updates and deletes those messages, uploads files and lists the files
of a channel. Every call returns a Result holding the http status, raw body and decoded json
of the slack response and successful results are kept as shared values so later steps of a
pipeline can reuse them (i.e. the ts of a posted message to reply in its thread).

Example code:

	package main

	import (
		"context"
		"log"

		"github.com/alexandre-normand/slacklane"
		"github.com/alexandre-normand/slacklane/actions"
		"github.com/alexandre-normand/slacklane/attachments"
		"github.com/alexandre-normand/slacklane/config"
	)

	func main() {
		v := config.NewViperWithDefaults()
		if err := config.BindEnvironment(v); err != nil {
			log.Fatal(err)
		}

		bot, err := slacklane.NewBot(v).Build()
		if err != nil {
			log.Fatal(err)
		}

		post := actions.NewPost().
			WithChannel("releases").
			WithContent(actions.NewMessageContent().
				WithMessage("App successfully released!").
				WithPayloadEntry("Build Date", "2024-05-01").
				WithContextFields(attachments.Lane, attachments.GitBranch).
				Build()).
			Build()

		if _, err = bot.PostMessage(context.Background(), post); err != nil {
			log.Fatal(err)
		}

		r, _ := bot.SharedValue(slacklane.PostToSlackResult)
		log.Printf("Posted message with ts [%v]", r.JSON["ts"])
	}

The slacklane command exposes the same actions with flags and environment variables.
*/
package slacklane
