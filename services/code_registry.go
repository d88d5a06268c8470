package services

import (
	"sync"

	"github.com/yeremiapane/bistro-pos/domain"
	"github.com/yeremiapane/bistro-pos/models"
	"github.com/yeremiapane/bistro-pos/repository"
	"github.com/yeremiapane/bistro-pos/utils"
)

// CodeRef adalah hasil reverse lookup: id -> (codeType, code).
type CodeRef struct {
	CodeType string
	Code     string
}

// CodeRegistry me-resolve code simbolik (mis. ORDER_STATUS.OPEN) ke id numerik
// di tabel code_entries, dan sebaliknya. Seluruh tabel dimuat sekali ke dua map
// in-memory; mutasi lewat SetActive melakukan invalidate + reload sinkron
// sebelum return, jadi tidak pernah ada pembacaan stale setelah call selesai.
type CodeRegistry struct {
	entryRepo       repository.CodeEntryRepository
	translationRepo repository.CodeTranslationRepository

	mu     sync.RWMutex
	byType map[string][]models.CodeEntry
	byID   map[uint]CodeRef
	loaded bool
}

func NewCodeRegistry(entryRepo repository.CodeEntryRepository, translationRepo repository.CodeTranslationRepository) *CodeRegistry {
	return &CodeRegistry{
		entryRepo:       entryRepo,
		translationRepo: translationRepo,
		byType:          make(map[string][]models.CodeEntry),
		byID:            make(map[uint]CodeRef),
	}
}

// Init memuat cache di awal. Opsional: Resolve/ReverseResolve juga lazy-load.
func (r *CodeRegistry) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reloadLocked()
}

// Resolve -> id numerik untuk (codeType, code). Hanya entry aktif yang
// di-resolve; entry yang dinonaktifkan lewat SetActive berperilaku seperti
// tidak ada.
func (r *CodeRegistry) Resolve(codeType, code string) (uint, error) {
	if err := r.ensureLoaded(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	for _, entry := range r.byType[codeType] {
		if entry.Code == code && entry.IsActive {
			r.mu.RUnlock()
			return entry.ID, nil
		}
	}
	r.mu.RUnlock()

	// Cache miss: coba langsung ke storage sebelum menyerah.
	entry, err := r.entryRepo.FindByCodeTypeAndCode(codeType, code, true)
	if err != nil {
		return 0, err
	}
	if entry == nil {
		return 0, domain.NewNotFoundError("code entry", "%s.%s", codeType, code)
	}
	return entry.ID, nil
}

// ReverseResolve -> (codeType, code) untuk satu id.
func (r *CodeRegistry) ReverseResolve(id uint) (CodeRef, error) {
	if err := r.ensureLoaded(); err != nil {
		return CodeRef{}, err
	}

	r.mu.RLock()
	ref, ok := r.byID[id]
	r.mu.RUnlock()
	if ok {
		return ref, nil
	}

	entry, err := r.entryRepo.FindByID(id)
	if err != nil {
		return CodeRef{}, err
	}
	if entry == nil {
		return CodeRef{}, domain.NewNotFoundError("code entry", "id %d", id)
	}

	ref = CodeRef{CodeType: entry.CodeType, Code: entry.Code}
	// Best-effort: isi cache untuk lookup berikutnya. Murni performa,
	// correctness tidak bergantung pada ini.
	r.mu.Lock()
	r.byID[id] = ref
	r.mu.Unlock()
	return ref, nil
}

// Translate -> label untuk satu id di bahasa tertentu. Label bersifat
// presentasional, jadi translation yang hilang bukan error: kembalikan "".
func (r *CodeRegistry) Translate(id uint, language string) (string, error) {
	translation, err := r.translationRepo.FindByCodeEntryIDAndLanguage(id, language)
	if err != nil {
		return "", err
	}
	if translation == nil {
		return "", nil
	}
	return translation.Label, nil
}

// EntriesByType -> seluruh entry (aktif maupun tidak) untuk satu code type,
// urut sort_order. Dipakai layar admin untuk menampilkan toggle order type.
func (r *CodeRegistry) EntriesByType(codeType string) ([]models.CodeEntry, error) {
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	cached, ok := r.byType[codeType]
	r.mu.RUnlock()
	if ok {
		return append([]models.CodeEntry(nil), cached...), nil
	}
	return r.entryRepo.FindByCodeType(codeType)
}

// IsActive -> apakah (codeType, code) ada dan aktif.
func (r *CodeRegistry) IsActive(codeType, code string) (bool, error) {
	entry, err := r.entryRepo.FindByCodeTypeAndCode(codeType, code, false)
	if err != nil {
		return false, err
	}
	if entry == nil {
		return false, nil
	}
	return entry.IsActive, nil
}

// SetActive menyalakan/mematikan satu entry lalu membuang dan memuat ulang
// SELURUH cache secara sinkron. Full reload lebih mahal dari invalidasi
// parsial tapi tidak mungkin menyisakan entry stale.
func (r *CodeRegistry) SetActive(codeType, code string, isActive bool) error {
	entry, err := r.entryRepo.FindByCodeTypeAndCode(codeType, code, false)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.NewNotFoundError("code entry", "%s.%s", codeType, code)
	}

	entry.IsActive = isActive
	if err := r.entryRepo.Update(entry); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.reloadLocked(); err != nil {
		return err
	}

	utils.InfoLogger.Printf("Code entry %s.%s set active=%t", codeType, code, isActive)
	return nil
}

func (r *CodeRegistry) ensureLoaded() error {
	r.mu.RLock()
	loaded := r.loaded
	r.mu.RUnlock()
	if loaded {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded {
		return nil
	}
	return r.reloadLocked()
}

func (r *CodeRegistry) reloadLocked() error {
	entries, err := r.entryRepo.FindAll()
	if err != nil {
		return err
	}

	byType := make(map[string][]models.CodeEntry)
	byID := make(map[uint]CodeRef)
	for _, entry := range entries {
		byType[entry.CodeType] = append(byType[entry.CodeType], entry)
		byID[entry.ID] = CodeRef{CodeType: entry.CodeType, Code: entry.Code}
	}

	r.byType = byType
	r.byID = byID
	r.loaded = true
	return nil
}
