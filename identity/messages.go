package identity

import (
	"errors"
	"regexp"
	"strings"
)

type Operation int

const (
	OpSignIn Operation = iota
	OpSignUp
)

const (
	msgInvalidCredentials = "بيانات تسجيل الدخول غير صحيحة"
	msgEmailNotConfirmed  = "يرجى تأكيد بريدك الإلكتروني أولاً"
	msgAlreadyRegistered  = "هذا البريد الإلكتروني مسجل بالفعل"
	msgSignInFailed       = "حدث خطأ أثناء تسجيل الدخول"
	msgSignUpFailed       = "حدث خطأ أثناء إنشاء الحساب"
)

// MapAuthError turns a provider failure into the message shown to the user.
// Only a handful of provider messages are recognised.
func MapAuthError(op Operation, err error) string {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		switch {
		case providerErr.Message == "Invalid login credentials":
			return msgInvalidCredentials
		case providerErr.Message == "Email not confirmed":
			return msgEmailNotConfirmed
		case strings.Contains(providerErr.Message, "already registered"):
			return msgAlreadyRegistered
		}
	}
	if op == OpSignUp {
		return msgSignUpFailed
	}
	return msgSignInFailed
}

var (
	ErrUsernameRequired       = errors.New("اسم المستخدم مطلوب")
	ErrUsernameFormat         = errors.New("اسم المستخدم يجب أن يحتوي على حروف إنجليزية وأرقام فقط")
	ErrRestaurantNameRequired = errors.New("اسم المطعم مطلوب")
	ErrPasswordMismatch       = errors.New("كلمات المرور غير متطابقة")
	ErrPasswordTooShort       = errors.New("كلمة المرور يجب أن تكون 6 أحرف على الأقل")
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type SignUpRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Username        string `json:"username"`
	RestaurantName  string `json:"restaurant_name"`
}

func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// Validate applies the sign-up form rules in the order the form reports them.
func (r SignUpRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return ErrUsernameRequired
	}
	if !ValidUsername(r.Username) {
		return ErrUsernameFormat
	}
	if strings.TrimSpace(r.RestaurantName) == "" {
		return ErrRestaurantNameRequired
	}
	if r.Password != r.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(r.Password) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}
