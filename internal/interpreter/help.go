package interpreter

const helpRule = "-------------------------------------------------------------"

var helpText = []string{
	helpRule,
	"Utilize as palavras chave * MOVER {DIREÇÃO} {NÚMERO DE POSIÇÕES} * para iniciar um comando de movimento",
	"AS DIREÇÕES POSSÍVEIS SÃO:",
	"CIMA, BAIXO, ESQUERDA, DIREITA, CIMA-ESQUERDA, CIMA-DIREITA, BAIXO-ESQUERDA, BAIXO-DIREITA",
	helpRule,
	"Também é possível a criação de variáveis por meio do comando *VAR*:",
	"VAR {Nome da variável} {Valor da variável}, ex: VAR TESTE 5",
	helpRule,
	"Utilize a palavra-chave *SE* para criar condições, ex:",
	"SE OBSTACULO CIMA MOVER BAIXO 5",
	"SE ROBO META MOSTRAR OBSTACULOS",
	helpRule,
	"Utilize o comando *MOSTRAR OBSTACULOS* para saber quais são as posições de cada obstáculo no tabuleiro",
	"Utilize o comando *INICIAR TIMER* para executar o script carregado",
	helpRule,
}
