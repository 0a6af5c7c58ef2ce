/*
Package attachments assembles the Slack attachment posted by slacklane actions. An attachment
is built from a message, an optional pretext, a success flag, a caller payload rendered as
fields and a whitelist of context fields (lane, result, git branch, author and commit) read
from a buildcontext.BuildContext. Caller overrides are deep merged over the assembled
properties as a last step.

A typical usage looks like:

	opts := attachments.DefaultOptions()
	opts.Message = "App successfully released!"
	opts.Payload = attachments.Payload{{Key: "Build Date", Value: time.Now()}}
	opts.IncludeContextFields = attachments.NewContextFieldSet(attachments.GitBranch, attachments.GitAuthor)
	opts.Overrides = attachments.Overrides{
		"thumb_url": attachments.Value("http://example.com/path/to/thumb.png"),
	}

	attachment := attachments.Build(opts, bc)
*/
package attachments
