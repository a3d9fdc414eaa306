package commands

import (
	"context"
	"fmt"

	"github.com/coschain/cobra"
	"github.com/slackernews/paygate/prototype"
)

var PostCmd = func() *cobra.Command {
	return &cobra.Command{
		Use:     "post",
		Short:   "build the payment for a new post",
		Example: "post <user>",
		Args:    cobra.ExactArgs(1),
		Run:     buildRunner(prototype.InteractionPost),
	}
}

var CommentCmd = func() *cobra.Command {
	return &cobra.Command{
		Use:     "comment",
		Short:   "build the payment for a comment",
		Example: "comment <user> <author>",
		Args:    cobra.ExactArgs(2),
		Run:     buildRunner(prototype.InteractionComment),
	}
}

var UpvoteCmd = func() *cobra.Command {
	return &cobra.Command{
		Use:     "upvote",
		Short:   "build the payment for an upvote",
		Example: "upvote <user> <author>",
		Args:    cobra.ExactArgs(2),
		Run:     buildRunner(prototype.InteractionUpvote),
	}
}

func buildRunner(t prototype.InteractionType) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		author := ""
		if len(args) > 1 {
			author = args[1]
		}
		resp, err := gateway(cmd).Build(context.Background(), t, args[0], author)
		if err != nil {
			fmt.Println(err)
			return
		}
		printJSON(resp)
	}
}
