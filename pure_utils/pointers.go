package pure_utils

func ToPtr[T any](v T) *T {
	return &v
}
