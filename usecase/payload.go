package usecase

import "github.com/DUBIX17/Dubix-sophia/domain"

// AssemblePayload builds the upstream contents: the persona pair, each
// remembered turn as a user/model pair oldest first, then current.
func AssemblePayload(persona Persona, turns []domain.Turn, current string) []domain.ChatMessage {
	contents := make([]domain.ChatMessage, 0, 2+2*len(turns)+1)
	contents = append(contents,
		domain.ChatMessage{Role: domain.UserRole, Content: persona.Instruction},
		domain.ChatMessage{Role: domain.ModelRole, Content: persona.Acknowledgment},
	)
	for _, t := range turns {
		contents = append(contents,
			domain.ChatMessage{Role: domain.UserRole, Content: t.Request},
			domain.ChatMessage{Role: domain.ModelRole, Content: t.Response},
		)
	}
	return append(contents, domain.ChatMessage{Role: domain.UserRole, Content: current})
}
