// chatcli is a small terminal client for the chat endpoint. It sends one
// question, reassembles the event stream and prints the answer as it grows.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"djurdata-ai/internal/apis/dtos"
	"djurdata-ai/pkg/chatstream"
)

func main() {
	serverURL := flag.String("server", "http://localhost:3000", "server base URL")
	animalID := flag.String("animal", "", "animal id for animal-scoped chat")
	token := flag.String("token", "", "bearer token for authenticated chat")
	flag.Parse()

	question := strings.Join(flag.Args(), " ")
	if question == "" {
		fmt.Fprintln(os.Stderr, "usage: chatcli [flags] <question>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	req := dtos.ChatRequest{
		Messages:     []dtos.ChatMessage{{Role: "user", Content: question}},
		IsGlobalMode: *animalID == "",
	}
	if *animalID != "" {
		req.AnimalID = animalID
	}

	body, err := json.Marshal(req)
	if err != nil {
		log.Fatalf("failed to encode request: %v", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, *serverURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("failed to build request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if *token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+*token)
	}

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		printRejection(resp)
		os.Exit(1)
	}

	printed := 0
	_, err = chatstream.Consume(resp.Body, func(snapshot string) {
		// Print only the newly arrived suffix so the terminal shows a
		// growing answer.
		fmt.Print(snapshot[printed:])
		printed = len(snapshot)
	})
	fmt.Println()
	if err != nil && err != io.EOF {
		log.Fatalf("stream failed: %v", err)
	}
}

func printRejection(resp *http.Response) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("failed to read error response: %v", err)
	}

	var rejection dtos.ChatRejection
	if err := json.Unmarshal(body, &rejection); err == nil && rejection.Error != "" {
		fmt.Fprintln(os.Stderr, rejection.Error)
		return
	}
	fmt.Fprintf(os.Stderr, "request failed (%d): %s\n", resp.StatusCode, body)
}
