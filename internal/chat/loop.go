// Package chat implementa a conversa pelo terminal: banner, menu e o laco
// de perguntas e respostas.
package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"ccsbot/internal/service"
	"ccsbot/internal/utils"
)

const (
	userPrompt = "Você: "
	botPrefix  = "Bot: "
)

// Responder e satisfeito por *service.MessageService.
type Responder interface {
	Respond(text string) service.Reply
}

// Loop le perguntas de in e escreve as respostas em out.
type Loop struct {
	responder Responder
	in        io.Reader
	out       io.Writer
}

// NewLoop cria o laco de conversa sobre a entrada e a saida informadas.
func NewLoop(responder Responder, in io.Reader, out io.Writer) *Loop {
	return &Loop{responder: responder, in: in, out: out}
}

type readResult struct {
	line string
	err  error
	eof  bool
}

// Run conversa ate o usuario pedir para sair, a entrada acabar ou o contexto ser
// cancelado. O cancelamento encerra a conversa mesmo com a leitura bloqueada.
func (l *Loop) Run(ctx context.Context) error {
	fmt.Fprintln(l.out, utils.BuildBanner())
	l.printMenu()

	if ctx.Err() != nil {
		l.printGoodbye()
		return nil
	}

	done := make(chan struct{})
	defer close(done)
	lines := l.readLines(done)

	for {
		fmt.Fprint(l.out, userPrompt)

		var res readResult
		select {
		case <-ctx.Done():
			l.printGoodbye()
			return nil
		case res = <-lines:
		}

		if res.eof {
			l.printGoodbye()
			return res.err
		}

		reply := l.responder.Respond(res.line)
		switch reply.Kind {
		case service.ReplyMenu:
			l.printMenu()
		case service.ReplyExit:
			l.printBot(reply.Messages)
			return nil
		default:
			l.printBot(reply.Messages)
		}
	}
}

// readLines le a entrada numa goroutine propria, ja que Scan nao pode ser
// interrompido. A goroutine termina no fim da entrada ou quando done fecha.
func (l *Loop) readLines(done <-chan struct{}) <-chan readResult {
	lines := make(chan readResult)
	go func() {
		scanner := bufio.NewScanner(l.in)
		scanner.Buffer(make([]byte, 0, 4096), 1<<20)
		for scanner.Scan() {
			select {
			case lines <- readResult{line: scanner.Text()}:
			case <-done:
				return
			}
		}
		select {
		case lines <- readResult{eof: true, err: scanner.Err()}:
		case <-done:
		}
	}()
	return lines
}

func (l *Loop) printGoodbye() {
	fmt.Fprintf(l.out, "\n%s%s\n", botPrefix, utils.GoodbyeMessage)
}

func (l *Loop) printMenu() {
	fmt.Fprintf(l.out, "\n%s\n\n", utils.BuildMenu())
}

func (l *Loop) printBot(messages []string) {
	for _, msg := range messages {
		fmt.Fprintf(l.out, "%s%s\n", botPrefix, msg)
	}
}
