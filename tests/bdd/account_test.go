package bdd

import (
	"context"
	"fmt"
	"os"
	"testing"

	accountapp "short_video_service/internal/account/app"
	accountrepo "short_video_service/internal/account/repository"
	"short_video_service/pkg/logger"

	"github.com/cucumber/godog"
)

func TestFeatures(t *testing.T) {
	logger.SetNewNop()

	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Paths:  []string{"./featureFiles"}, // 指向 feature 檔相對路徑
			Format: "pretty",
			Output: os.Stdout,
		},
	}

	if suite.Run() != 0 {
		t.Fail()
	}
}

// 這個函式用來註冊 Gherkin 與 Step Definition 的對應
func InitializeScenario(s *godog.ScenarioContext) {
	// 每個 scenario 用全新的 in-memory 帳號存放區
	s.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		usecase = accountapp.NewAccountUseCase(accountrepo.NewAccountRepository())
		lastResult = ""
		lastError = nil
		return ctx, nil
	})

	s.Step(`^an account with username "([^"]*)" and password "([^"]*)" exists$`, anAccountExists)
	s.Step(`^I attempt to sign up with "([^"]*)" and "([^"]*)"$`, iAttemptToSignUpWith)
	s.Step(`^I attempt to login with "([^"]*)" and "([^"]*)"$`, iAttemptToLoginWith)
	s.Step(`^I should get a "([^"]*)" response$`, iShouldGetAResponse)
	s.Step(`^the error should mention "([^"]*)"$`, theErrorShouldMention)
}

var (
	usecase    accountapp.AccountUseCase
	lastResult string
	lastError  error
)

func anAccountExists(username, password string) error {
	_, err := usecase.Register(context.Background(), username, password)
	return err
}

func iAttemptToSignUpWith(username, password string) error {
	_, err := usecase.Register(context.Background(), username, password)
	if err != nil {
		lastResult = "failure"
		lastError = err
	} else {
		lastResult = "success"
		lastError = nil
	}
	return nil
}

func iAttemptToLoginWith(username, password string) error {
	_, err := usecase.Login(context.Background(), username, password)
	if err != nil {
		lastResult = "failure"
		lastError = err
	} else {
		lastResult = "success"
		lastError = nil
	}
	return nil
}

func iShouldGetAResponse(expected string) error {
	if lastResult != expected {
		return fmt.Errorf("expected %s, but got %s", expected, lastResult)
	}
	return nil
}

func theErrorShouldMention(expected string) error {
	if lastError == nil {
		return fmt.Errorf("expected an error mentioning %q, but got none", expected)
	}
	if lastError.Error() != expected {
		return fmt.Errorf("expected %q, but got %q", expected, lastError.Error())
	}
	return nil
}
