package forms

import "testing"

func TestLoginFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		form    LoginForm
		wantErr string
	}{
		{"valid", LoginForm{Username: "stella", Password: "hunter22"}, ""},
		{"missing username", LoginForm{Password: "hunter22"}, "username is required"},
		{"missing password", LoginForm{Username: "stella"}, "password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Validate() = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterFormValidate(t *testing.T) {
	valid := RegisterForm{
		Username:        "stella",
		Email:           "stella@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
		Nickname:        "Stella",
	}

	tests := []struct {
		name    string
		mutate  func(f *RegisterForm)
		wantErr string
	}{
		{"valid", func(f *RegisterForm) {}, ""},
		{"short username", func(f *RegisterForm) { f.Username = "ab" }, "username must be at least 3 characters"},
		{"bad email", func(f *RegisterForm) { f.Email = "not-an-email" }, "email must be a valid email address"},
		{"short password", func(f *RegisterForm) { f.Password = "abc"; f.ConfirmPassword = "abc" }, "password must be at least 6 characters"},
		{"password mismatch", func(f *RegisterForm) { f.ConfirmPassword = "different" }, "passwords do not match"},
		{"empty nickname ok", func(f *RegisterForm) { f.Nickname = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			err := form.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Validate() = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
