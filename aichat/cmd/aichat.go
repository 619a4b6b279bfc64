// Command-line chat session against a running aichat server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"aichat/aichat/client"
	"aichat/aichat/transcript"
	"aichat/aichat/types"
	"aichat/aichat/utils/logging"

	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()

	base := os.Getenv("AICHAT_SERVER")
	if base == "" {
		base = "http://localhost:8000"
	}
	cl := client.New(base)
	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("username: ")
	if !scanner.Scan() {
		return
	}
	username := strings.TrimSpace(scanner.Text())
	login, err := cl.Login(ctx, username)
	if err != nil {
		fmt.Println("login failed:", err)
		os.Exit(1)
	}
	userID := login.User.ID
	logging.AppLogger.Info("cli session started",
		zap.String("user_id", userID),
		zap.String("server", base),
	)

	models, err := cl.Models(ctx)
	if err != nil {
		fmt.Println("failed to fetch models:", err)
		os.Exit(1)
	}
	for i, m := range models {
		fmt.Printf("  [%d] %s - %s\n", i, m.Name, m.Description)
	}
	fmt.Print("model> ")
	if !scanner.Scan() {
		return
	}
	model := pickModel(models, strings.TrimSpace(scanner.Text()))
	fmt.Println("using model:", model)

	tr := transcript.New()
	refresh(ctx, cl, tr, userID)
	printTranscript(tr)

	fmt.Println("\nType a message to chat, or /history /models /edit <n> <text> /regen <n> /delete <n>. 'exit' to quit.")
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		switch {
		case line == "/models":
			for _, m := range models {
				fmt.Printf("  %s - %s\n", m.ID, m.Description)
			}
		case line == "/history":
			refresh(ctx, cl, tr, userID)
			printTranscript(tr)
		case strings.HasPrefix(line, "/edit "):
			rest := strings.TrimPrefix(line, "/edit ")
			parts := strings.SplitN(rest, " ", 2)
			if len(parts) != 2 {
				fmt.Println("usage: /edit <n> <new text>")
				continue
			}
			id, ok := messageAt(tr, parts[0])
			if !ok {
				continue
			}
			resp, err := cl.Edit(ctx, id, parts[1], model, userID)
			if err != nil {
				fmt.Println("edit failed:", err)
				continue
			}
			tr.ApplyEdit(resp.UpdatedMessage, resp.AIMessage)
			fmt.Println("ai>", resp.AIMessage.Content)
			refresh(ctx, cl, tr, userID)
		case strings.HasPrefix(line, "/regen "):
			id, ok := messageAt(tr, strings.TrimPrefix(line, "/regen "))
			if !ok {
				continue
			}
			msg, err := cl.Regenerate(ctx, id, model, userID)
			if err != nil {
				fmt.Println("regenerate failed:", err)
				continue
			}
			fmt.Println("ai>", msg.Content)
			refresh(ctx, cl, tr, userID)
		case strings.HasPrefix(line, "/delete "):
			id, ok := messageAt(tr, strings.TrimPrefix(line, "/delete "))
			if !ok {
				continue
			}
			if _, err := cl.Delete(ctx, id, userID); err != nil {
				fmt.Println("delete failed:", err)
				continue
			}
			tr.ApplyDelete(id)
			refresh(ctx, cl, tr, userID)
		default:
			tr.BeginSend(line)
			resp, err := cl.Send(ctx, model, line, userID)
			if err != nil {
				tr.FailSend()
				fmt.Println("send failed:", err)
				continue
			}
			tr.ResolveSend(resp.UserMessage, resp.AIMessage)
			fmt.Println("ai>", resp.AIMessage.Content)
			refresh(ctx, cl, tr, userID)
		}
	}
	fmt.Println("bye")
}

func pickModel(models []types.ModelInfo, input string) string {
	if input == "" && len(models) > 0 {
		return models[0].ID
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 0 && n < len(models) {
		return models[n].ID
	}
	return input
}

func refresh(ctx context.Context, cl *client.Client, tr *transcript.Transcript, userID string) {
	history, err := cl.History(ctx, userID, 50)
	if err != nil {
		fmt.Println("failed to refresh history:", err)
		return
	}
	tr.Reset(history)
}

func messageAt(tr *transcript.Transcript, arg string) (string, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	msgs := tr.Messages()
	if err != nil || n < 0 || n >= len(msgs) {
		fmt.Println("no such message index")
		return "", false
	}
	return msgs[n].ID, true
}

func printTranscript(tr *transcript.Transcript) {
	for i, m := range tr.Messages() {
		fmt.Printf("  [%d] %s: %s\n", i, m.Role, m.Content)
	}
}
