package domain

// transitions memetakan status order ke daftar status tujuan yang legal.
// COMPLETED -> PREPARING terbuka untuk koreksi dapur setelah order ditutup.
var transitions = map[string][]string{
	StatusOpen:           {StatusPreparing, StatusCompleted, StatusCancelled},
	StatusPreparing:      {StatusReady, StatusCancelled},
	StatusReady:          {StatusServed, StatusOutForDelivery, StatusCompleted, StatusCancelled},
	StatusOutForDelivery: {StatusCompleted, StatusCancelled},
	StatusServed:         {StatusCompleted, StatusCancelled},
	StatusCompleted:      {StatusPreparing},
	StatusCancelled:      {},
}

// CanTransition -> apakah perpindahan current=>next legal. Self-transition
// selalu legal (idempotent update).
func CanTransition(current, next string) bool {
	if current == next {
		return true
	}
	for _, allowed := range transitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextStatus -> status happy-path berikutnya, "" jika terminal.
func NextStatus(current string) string {
	next := transitions[current]
	if len(next) == 0 {
		return ""
	}
	return next[0]
}

// IsFinalStatus -> COMPLETED dan CANCELLED adalah status terminal.
func IsFinalStatus(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}
