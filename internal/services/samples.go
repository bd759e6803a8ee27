package services

import (
	"github.com/dmitrijs2005/adatasks/internal/ids"
	"github.com/dmitrijs2005/adatasks/internal/models"
)

type sampleTask struct {
	title     string
	priority  models.Priority
	completed bool
	listID    string
	assignee  string
}

var sampleTaskSpecs = []sampleTask{
	{"Revisar documentação do projeto", models.PriorityHigh, true, "trabalho", "João Silva"},
	{"Implementar nova funcionalidade", models.PriorityMedium, false, "trabalho", "Maria Santos"},
	{"Fazer backup dos dados", models.PriorityMedium, false, "trabalho", ""},
	{"Reunião com cliente", models.PriorityHigh, true, "trabalho", "Pedro Lima"},
	{"Atualizar servidor de produção", models.PriorityHigh, false, "trabalho", ""},

	{"Comprar mantimentos", models.PriorityMedium, true, "pessoal", ""},
	{"Marcar consulta médica", models.PriorityHigh, false, "pessoal", ""},
	{"Organizar armário", models.PriorityLow, false, "pessoal", ""},
	{"Pagar contas do mês", models.PriorityHigh, true, "pessoal", ""},

	{"Ler capítulo 5 do livro de JavaScript", models.PriorityMedium, false, "estudos", ""},
	{"Assistir curso de React", models.PriorityMedium, true, "estudos", ""},
	{"Fazer exercícios de CSS", models.PriorityLow, false, "estudos", ""},
	{"Estudar para certificação", models.PriorityHigh, false, "estudos", "Ana Costa"},
	{"Preparar apresentação final", models.PriorityHigh, false, "estudos", ""},
	{"Revisar anotações da aula", models.PriorityLow, true, "estudos", ""},
}

func sampleTasks(gen *ids.Generator) []models.Task {
	now := gen.Now().UTC()
	tasks := make([]models.Task, 0, len(sampleTaskSpecs))
	for _, s := range sampleTaskSpecs {
		t := models.Task{
			ID:        gen.Next(),
			Title:     s.title,
			Priority:  s.priority,
			Completed: s.completed,
			ListID:    s.listID,
			Assignee:  s.assignee,
			CreatedAt: now,
		}
		if s.completed {
			done := now
			t.CompletedAt = &done
		}
		tasks = append(tasks, t)
	}
	return tasks
}
