package interpreter

import (
	"fmt"
	"strings"
)

// VAR name value
func (in *Interpreter) execVar(cmd Command) error {
	if len(cmd.Args) < 2 {
		return usageError(cmd.Name)
	}
	name := cmd.Args[0]
	val := Evaluate(cmd.Args[1], in.session.Env)
	in.session.Env.Set(name, val)
	in.session.Log(fmt.Sprintf("Variável %s definida com valor %d", name, val), false)
	return nil
}

// MOVER direction steps. Unlike VAR, an undefined variable here is an error.
func (in *Interpreter) execMove(cmd Command) error {
	if len(cmd.Args) < 2 {
		return usageError(cmd.Name)
	}
	steps, ok := parseLiteral(cmd.Args[1])
	if !ok {
		name := cmd.Args[1]
		if steps, ok = in.session.Env.Get(name); !ok {
			return newError(ErrUndefinedVariable, "Variável %q não definida.", name)
		}
	}
	return in.session.move(cmd.Args[0], steps)
}

// AJUDA
func (in *Interpreter) execHelp(cmd Command) error {
	if len(cmd.Args) != 0 {
		return usageError(cmd.Name)
	}
	for _, line := range helpText {
		in.session.Log(line, false)
	}
	return nil
}

// MOSTRAR OBSTACULOS
func (in *Interpreter) execShow(cmd Command) error {
	if len(cmd.Args) < 1 {
		return usageError(cmd.Name)
	}
	if sub := strings.ToUpper(cmd.Args[0]); sub != "OBSTACULOS" {
		return newError(ErrUnknownCommand, "Comando MOSTRAR %s desconhecido.", sub)
	}
	obstacles := in.session.Board.Obstacles()
	if len(obstacles) == 0 {
		in.session.Log("Nenhum obstáculo encontrado no tabuleiro.", false)
		return nil
	}
	in.session.Log("Posições dos obstáculos no tabuleiro:", false)
	for i, p := range obstacles {
		in.session.Log(fmt.Sprintf("Obstáculo %d: %s", i+1, p), false)
	}
	return nil
}

// INICIAR TIMER
func (in *Interpreter) execStart(cmd Command) error {
	if len(cmd.Args) < 1 {
		return usageError(cmd.Name)
	}
	if sub := strings.ToUpper(cmd.Args[0]); sub != "TIMER" {
		return newError(ErrUnknownCommand, "Comando INICIAR %s desconhecido.", sub)
	}
	if in.starter != nil {
		in.starter.Start()
	}
	return nil
}

// SE condition expected action...
func (in *Interpreter) execIf(cmd Command, depth int) error {
	if len(cmd.Args) < 3 {
		return usageError(cmd.Name)
	}
	condition := strings.ToUpper(cmd.Args[0])
	expected := strings.ToUpper(cmd.Args[1])
	action := strings.Join(cmd.Args[2:], " ")

	met, err := in.session.evalCondition(condition, expected)
	if err != nil {
		return err
	}
	if !met {
		in.session.Log(fmt.Sprintf("Condição %q não atendida.", condition+" "+expected), false)
		return nil
	}
	in.session.Log(fmt.Sprintf("Condição %q atendida. Executando: %s", condition+" "+expected, action), false)
	return in.run(action, depth+1)
}
