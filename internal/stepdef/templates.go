package stepdef

// The generated files target pytest-bdd. Each definition anchors its pattern
// with ^...$ so partially overlapping step texts cannot collide.

const playwrightTemplateText = `"""Auto-generated step definitions for {{.Feature}} (Playwright, pytest-bdd)."""

import pytest
from pytest_bdd import given, when, then, parsers
from playwright.sync_api import Page, expect, sync_playwright


# ===== Fixtures =====

@pytest.fixture(scope="session")
def playwright():
    """Initialize Playwright."""
    with sync_playwright() as p:
        yield p


@pytest.fixture(scope="session")
def browser(playwright):
    """Get browser instance."""
    browser = playwright.chromium.launch(headless=True)
    yield browser
    browser.close()


@pytest.fixture
def page(browser):
    """Get Playwright page fixture."""
    page = browser.new_page()
    yield page
    page.close()


# ===== Steps =====

{{range .Defs}}{{if eq .Action "navigate"}}@{{.Decorator}}(parsers.re(r"""^{{.Pattern}}$"""))
def {{.FuncName}}(page):
    """Navigate to a page."""
    # Example: page.goto("https://example.com/login")
    pass


{{else if eq .Action "enter"}}@{{.Decorator}}(parsers.re(r"""^{{.Pattern}}$"""))
def {{.FuncName}}(page, locator=None, value=None):
    """Enter text into a field."""
    if locator:
        locator_var = locator.split(".")[-1]
        page.locator(f"#{locator_var}").fill(value or "test_value")


{{else if eq .Action "click"}}@{{.Decorator}}(parsers.re(r"""^{{.Pattern}}$"""))
def {{.FuncName}}(page, locator=None):
    """Click on an element."""
    if locator:
        locator_var = locator.split(".")[-1]
        page.locator(f"#{locator_var}").click()


{{else if eq .Action "select"}}@{{.Decorator}}(parsers.re(r"""^{{.Pattern}}$"""))
def {{.FuncName}}(page, locator=None, value=None):
    """Select an option."""
    if locator and value:
        locator_var = locator.split(".")[-1]
        page.locator(f"#{locator_var}").select_option(value)


{{else}}@{{.Decorator}}(parsers.re(r"""^{{.Pattern}}$"""))
def {{.FuncName}}(page, locator=None, value=None):
    """Verify an element or text is visible."""
    if locator:
        locator_var = locator.split(".")[-1]
        expect(page.locator(f"#{locator_var}")).to_be_visible()
    elif value:
        expect(page.locator(f"text={value}")).to_be_visible()


{{end}}{{end}}`

const seleniumTemplateText = `"""Auto-generated step definitions for {{.Feature}} (Selenium, pytest-bdd)."""

import pytest
from pytest_bdd import given, when, then, parsers
from selenium.webdriver.common.by import By
from selenium.webdriver.support.ui import WebDriverWait
from selenium.webdriver.support import expected_conditions as EC


# ===== Fixtures =====

@pytest.fixture
def driver(browser):
    """Get Selenium WebDriver fixture."""
    return browser


# ===== Steps =====

{{range .Defs}}{{if eq .Action "navigate"}}@{{.Decorator}}(parsers.re(r"""^{{.Pattern}}$"""))
def {{.FuncName}}(driver):
    """Navigate to a page."""
    # Example: driver.get("https://example.com/login")
    pass


{{else if eq .Action "enter"}}@{{.Decorator}}(parsers.re(r"""^{{.Pattern}}$"""))
def {{.FuncName}}(driver, locator=None, value=None):
    """Enter text into a field."""
    if locator:
        locator_var = locator.split(".")[-1]
        element = driver.find_element(By.ID, locator_var)
        element.send_keys(value or "test_value")


{{else if eq .Action "click"}}@{{.Decorator}}(parsers.re(r"""^{{.Pattern}}$"""))
def {{.FuncName}}(driver, locator=None):
    """Click on an element."""
    if locator:
        locator_var = locator.split(".")[-1]
        driver.find_element(By.ID, locator_var).click()


{{else if eq .Action "select"}}@{{.Decorator}}(parsers.re(r"""^{{.Pattern}}$"""))
def {{.FuncName}}(driver, locator=None, value=None):
    """Select an option."""
    if locator and value:
        locator_var = locator.split(".")[-1]
        driver.find_element(By.ID, locator_var).send_keys(value)


{{else}}@{{.Decorator}}(parsers.re(r"""^{{.Pattern}}$"""))
def {{.FuncName}}(driver, locator=None, value=None):
    """Verify an element or text is visible."""
    if locator:
        locator_var = locator.split(".")[-1]
        assert driver.find_element(By.ID, locator_var).is_displayed()
    elif value:
        assert value in driver.page_source


{{end}}{{end}}`
